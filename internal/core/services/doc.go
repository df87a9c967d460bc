// Package services implements the driving ports with the application's
// business logic. Services validate input, delegate to driven ports, and
// keep session state coherent across the token store and the session
// provider. They hold no transport or storage code themselves.
package services
