package dfxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ReadFileObjects decodes every fileobject element of a DFXML document,
// ignoring everything else.
func ReadFileObjects(r io.Reader) ([]FileObject, error) {
	dec := xml.NewDecoder(r)

	var objs []FileObject
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return objs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read report: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "fileobject" {
			continue
		}

		var obj FileObject
		if err := dec.DecodeElement(&obj, &start); err != nil {
			return nil, fmt.Errorf("failed to decode fileobject: %w", err)
		}
		objs = append(objs, obj)
	}
}
