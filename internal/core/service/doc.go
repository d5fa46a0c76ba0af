// Package service provides domain services for the Demo Forums API.
//
// Services orchestrate the entity store and the session table behind
// repository interfaces so handlers stay thin and tests can substitute
// in-memory mocks.
package service
