// Package unit runs the bot under supervision.
//
// A Unit is started once, may receive one forwarded signal and yields exactly
// one Outcome. ProcessUnit runs the bot as a child process with the
// validated configuration as its entire environment. InProcessUnit runs a
// Bot inside the supervisor for a fixed window.
package unit
