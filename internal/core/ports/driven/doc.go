// Package driven defines the outbound port interfaces of the hexagon.
//
// Driven ports are implemented by adapters under internal/adapters/driven
// and consumed by the services in internal/core/services. They cover the
// backend API, credential storage, session providers, and configuration.
package driven
