// Package driving defines the inbound port interfaces of the hexagon.
//
// Driving ports are implemented by the services in internal/core/services
// and consumed by the CLI and MCP adapters under internal/adapters/driving.
package driving
