package errors

import "errors"

var (
	// ErrMalformedInput reports raw text with no extractable order data at all.
	ErrMalformedInput = errors.New("no usable order data in input")
	// ErrExtraction reports an oracle reply without a well-formed JSON array.
	ErrExtraction = errors.New("no well-formed order array in reply")
	// ErrJSONDecode reports invalid JSON pasted into the report path.
	ErrJSONDecode = errors.New("invalid order JSON")
	// ErrSpreadsheetAuth reports rejected or missing spreadsheet credentials.
	ErrSpreadsheetAuth = errors.New("spreadsheet authentication failed")
	// ErrSpreadsheetWrite reports a failed spreadsheet write.
	ErrSpreadsheetWrite = errors.New("spreadsheet write failed")
	// ErrInvalidCredentials reports a failed operator login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession reports an action that needs a batch when none is held.
	ErrNoSession = errors.New("no order batch in current session")
)
