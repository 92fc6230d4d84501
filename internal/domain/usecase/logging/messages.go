package logging

// Translation keys for messages emitted by the Logger itself
const (
	MsgXMLProcessed = "xml.processed"
	MsgXMLInvalid   = "xml.invalid"
	MsgXMLError     = "xml.error"
)
