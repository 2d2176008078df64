// Package checkout turns the cart into an order through a mock payment flow.
//
// # Flow
//
//  1. [Summarize] prices the cart: subtotal, tax at the configured rate, total.
//  2. [ValidateContact] and [ValidatePayment] check the form fields.
//  3. [Processor.Complete] re-checks everything, waits the simulated processing
//     delay, records a purchase for every line, clears the cart and returns the
//     [Order] confirmation.
//
// # Progress Reporting
//
// Complete reports each [Phase] on an optional channel. Updates use select with
// default, so a slow or absent reader never blocks the checkout.
package checkout
