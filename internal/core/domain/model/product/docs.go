// Package product implements the catalog aggregate as a closed sum type.
//
// Every catalog entry satisfies the Product capability interface (identity, name,
// price, category, availability and shipping cost). Two variants exist:
//
//   - *Physical: has Dimensions and an integer stock count that never goes negative.
//     Shipping is billed on dimensional weight: max(weight, L×W×H/6000) × 2.5 + 10.
//   - *Digital: has a downloadable Asset; shipping is always zero and download
//     links are minted on demand with a caller-supplied freshness token.
//
// The variant set is sealed: Product carries an unexported method, so callers
// resolve variant-specific behaviour with a type switch over *Physical and *Digital.
//
// Prices are exact decimals; no floating-point value is ever used for money.
package product
