package vocals

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"

	"github.com/Elevatorisbest/Lyridan/internal/fsutil"
)

var ErrExport = errors.New("vocals export failed")

// ExportError reports a vocals arrangement that could not be written.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export vocals to %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() []error {
	return []error{ErrExport, e.Err}
}

type vocalsDocument struct {
	XMLName xml.Name      `xml:"vocals"`
	Count   int           `xml:"count,attr"`
	Vocals  []vocalRecord `xml:"vocal"`
}

type vocalRecord struct {
	Time   string `xml:"time,attr"`
	Note   string `xml:"note,attr"`
	Length string `xml:"length,attr"`
	Lyric  string `xml:"lyric,attr"`
}

// Marshal renders events as a vocals arrangement with an XML declaration.
// count is the number of events.
func Marshal(events []Event) ([]byte, error) {
	doc := vocalsDocument{
		Count:  len(events),
		Vocals: make([]vocalRecord, len(events)),
	}
	for i, ev := range events {
		doc.Vocals[i] = vocalRecord{
			Time:   strconv.FormatFloat(ev.Time, 'f', 3, 64),
			Note:   strconv.Itoa(ev.Note),
			Length: strconv.FormatFloat(ev.Length, 'f', 3, 64),
			Lyric:  ev.Lyric,
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// Write saves events to path atomically.
func Write(path string, events []Event) error {
	data, err := Marshal(events)
	if err != nil {
		return &ExportError{Path: path, Err: err}
	}
	if err := fsutil.AtomicWrite(path, data); err != nil {
		return &ExportError{Path: path, Err: err}
	}
	return nil
}
