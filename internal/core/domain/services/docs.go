// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shipment system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PriceCalculator: A pure pricing function over tariff data and order attributes
//   - Settlement: A domain service that moves money from payer to collector and
//     marks the order paid, producing the receipt
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
