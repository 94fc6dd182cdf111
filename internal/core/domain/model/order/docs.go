// Package order provides domain entities and business logic for shipment
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, owner, and positive weight
//   - The shipping price is computed once at creation and never changes afterwards
//   - Order status follows a strictly forward workflow:
//     NOT_PAID -> PAID -> SHIPPED -> DELIVERED -> RECEIVED -> ARCHIVED
//   - The NOT_PAID -> PAID transition happens only through settlement and
//     links the order to its payment exactly once
//   - Orders may be deleted only while NOT_PAID
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
