// Package stream defines the push-based stream abstraction consumed by
// streamtap controllers, along with a few concrete sources.
//
// A Stream produces a sequence of values terminated by either a completion
// or an error signal. Subscribing registers a set of handlers and returns a
// Subscription whose Cancel releases the registration. Cancel is always
// idempotent.
//
// # Cold vs. hot sources
//
// A cold source restarts production from its own beginning for every
// subscription ([FromSlice]). A hot source produces independently of any
// one subscriber, and a new subscription only observes future events
// ([Subject], [Ticker]).
package stream
