package webdav

import (
	"encoding/xml"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Record is one entry of a PROPFIND multistatus response. Path is the
// decoded href, Dir derives from the trailing separator of the raw
// protocol path, LastModified carries the raw protocol timestamp.
type Record struct {
	Path         string
	Dir          bool
	Size         int64
	LastModified string
}

type multistatus struct {
	XMLName   xml.Name   `xml:"DAV: multistatus"`
	Responses []response `xml:"response"`
}

type response struct {
	Href     string     `xml:"href"`
	Propstat []propstat `xml:"propstat"`
}

type propstat struct {
	Prop prop `xml:"prop"`
}

type prop struct {
	ContentLength string `xml:"getcontentlength"`
	LastModified  string `xml:"getlastmodified"`
}

// ParseMultistatus decodes a PROPFIND response body into Records.
// Structural decisions (directory vs file) always come from this
// decode, never from scanning raw protocol text.
func ParseMultistatus(body io.Reader) ([]Record, error) {
	var ms multistatus
	if err := xml.NewDecoder(body).Decode(&ms); err != nil {
		return nil, &ParseError{Err: err}
	}

	records := make([]Record, 0, len(ms.Responses))
	for _, resp := range ms.Responses {
		rec := Record{
			Dir: strings.HasSuffix(resp.Href, "/"),
		}

		decoded, dErr := url.PathUnescape(resp.Href)
		if dErr != nil {
			decoded = resp.Href
		}
		rec.Path = decoded

		for _, ps := range resp.Propstat {
			if ps.Prop.ContentLength != "" {
				if size, sErr := strconv.ParseInt(strings.TrimSpace(ps.Prop.ContentLength), 10, 64); sErr == nil && size >= 0 {
					rec.Size = size
				}
			}
			if ps.Prop.LastModified != "" {
				rec.LastModified = strings.TrimSpace(ps.Prop.LastModified)
			}
		}

		records = append(records, rec)
	}

	return records, nil
}
