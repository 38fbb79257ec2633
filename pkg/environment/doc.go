// Package environment names the deployment environments the server knows
// and parses them from configuration. Production enables JSON logging and
// real mail delivery; development logs text and writes mails to disk.
package environment
