// Package domain defines the core domain models for the Demo Forums API.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling.
package domain
