// Package environment names the deployment environments (development,
// staging, production), parses them from configuration, and carries the
// active one through request contexts so handlers can decide, for example,
// whether to expose error details.
package environment
