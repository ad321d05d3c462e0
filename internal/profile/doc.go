// Package profile holds the launch mode catalog. Each mode narrows a base
// configuration snapshot with a fixed overlay and names the runner that
// executes the bot.
package profile
