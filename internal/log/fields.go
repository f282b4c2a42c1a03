// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID     = "request_id"
	FieldCorrelationID = "correlation_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Layer fields
	FieldLayer      = "layer"
	FieldIdentifier = "identifier"
	FieldReady      = "ready"
	FieldProbe      = "probe"

	// Path / network fields
	FieldPath       = "path"
	FieldListenAddr = "listen_addr"
)
