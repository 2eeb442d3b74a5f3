// Package flights holds module-wide metadata for the flights tool.
package flights

// Version is the released version of the flights module.
const Version = "0.1.0"
