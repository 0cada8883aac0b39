// Package models defines the FarmChainX client data model: the Session (the
// only client-owned entity), the closed Role set, and the transient
// projections of backend resources (crops, batches, listings, orders,
// support tickets) that views fetch and discard.
package models
