// Package pricing holds the storefront's price computations: currency
// conversion for display, the listing minimum-price selector, booking duration
// rules, estimated transactions and the booking breakdown assembler.
//
// Everything here is synchronous and free of I/O. Callers resolve the viewer's
// preferences and rate table once and pass them in.
package pricing
