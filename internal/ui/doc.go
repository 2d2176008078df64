// Package ui implements an interactive terminal storefront using bubbletea's Elm architecture.
//
// The TUI moves between these views:
//  1. [CatalogView] : Browse and filter the movie catalog
//  2. [DetailView] : Inspect one movie and add it to the cart
//  3. [CartView] : Review lines and totals, remove items or clear the cart
//  4. [LoginView] : Sign in; the request can be cancelled while pending
//  5. [CheckoutView] : Enter contact and payment details
//  6. [ProcessingView] : Monitor progress while the order is placed
//  7. [ResultView] : Display the order receipt
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Store mutations run as commands; their notifications are read from a [notify.Recorder] into the status line.
// Checkout progress flows through a channel from the [checkout.Processor] so reporting never blocks the order.
package ui
