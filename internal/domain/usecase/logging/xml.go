package logging

import (
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/logfacade/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
)

// LogXML validates and parses xmlText and logs the result at level.
//
// Invalid documents produce an error record carrying the raw text. Valid
// documents are attached under "xml" as a parsed tree, or as re-serialized
// XML text when the output format is xml. Failures inside the pipeline,
// including panics, become error records; nothing reaches the caller.
// The result reports whether xmlText was well-formed.
func (l *Logger) LogXML(xmlText string, level entity.LogLevel, metadata map[string]any) (valid bool) {
	defer func() {
		if r := recover(); r != nil {
			l.logXMLFailure(xmlText, fmt.Errorf("panic: %v", r), metadata)
		}
	}()

	if !l.xml.Validate(xmlText) {
		fields := mergeFields(metadata, map[string]any{entity.KeyXML: xmlText})
		l.Log(entity.LogLevelError, MsgXMLInvalid, fields)
		return false
	}
	valid = true

	tree, err := l.xml.Parse(xmlText)
	if err != nil {
		l.logXMLFailure(xmlText, err, metadata)
		return valid
	}

	var payload any = tree
	if l.config.OutputFormat == entity.OutputFormatXML {
		out, err := l.xml.Build(tree)
		if err != nil {
			l.logXMLFailure(xmlText, err, metadata)
			return valid
		}
		payload = out
	}

	l.Log(level, MsgXMLProcessed, mergeFields(metadata, map[string]any{entity.KeyXML: payload}))
	return valid
}

func (l *Logger) logXMLFailure(xmlText string, err error, metadata map[string]any) {
	fields := map[string]any{}
	var fielder domainerr.LogFielder
	if errors.As(err, &fielder) {
		for k, v := range fielder.LogFields() {
			fields[k] = v
		}
		delete(fields, entity.KeyError)
	}
	fields[entity.KeyXML] = xmlText

	// error and stack always describe err
	merged := mergeFields(metadata, fields)
	delete(merged, entity.KeyError)
	delete(merged, entity.KeyStack)
	l.Error(MsgXMLError, err, merged)
}
