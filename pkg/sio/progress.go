// Package sio holds transfer I/O helpers shared by the download and
// upload commands.
package sio

import (
	"fmt"
	"io"

	"davsh/pkg/conf"
	"davsh/pkg/escseq"
)

// Printer receives progress lines during a transfer
type Printer interface {
	Printf(format string, args ...interface{})
}

// ProgressReader wraps a reader and reports progress through out as it
// is consumed. Used for uploads where the transport owns the copy loop.
type ProgressReader struct {
	src            io.Reader
	totalSize      int64
	operation      string
	out            Printer
	read           int64
	lastReportedMB int64
}

func NewProgressReader(src io.Reader, totalSize int64, operation string, out Printer) *ProgressReader {
	return &ProgressReader{
		src:            src,
		totalSize:      totalSize,
		operation:      operation,
		out:            out,
		lastReportedMB: -1,
	}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.src.Read(b)
	if n > 0 {
		p.read += int64(n)

		var eraseLine string
		if p.lastReportedMB != -1 {
			eraseLine = escseq.CursorEraseLine()
		}

		currentMB := p.read / conf.BytesPerMB
		if currentMB != p.lastReportedMB || p.read == p.totalSize {
			p.lastReportedMB = currentMB
			if p.totalSize > 0 {
				progress := float64(p.read) / float64(p.totalSize) * 100
				p.out.Printf("%s%s: %.1f%% (%.2f MB / %.2f MB)", eraseLine, p.operation, progress, float64(p.read)/conf.BytesPerMB, float64(p.totalSize)/conf.BytesPerMB)
			} else {
				p.out.Printf("%s%s: %.2f MB", eraseLine, p.operation, float64(p.read)/conf.BytesPerMB)
			}
		}
	}
	return n, err
}

// CopyWithProgress copies src to dst reporting progress through out.
// Progress is reported every 1MB and at completion. A totalSize of -1
// means the size is unknown and only the byte counter is shown.
func CopyWithProgress(dst io.Writer, src io.Reader, totalSize int64, operation string, out Printer) (int64, error) {
	buffer := make([]byte, conf.TransferBufferSize)
	var written int64
	var lastReportedMB int64 = -1

	for {
		nr, er := src.Read(buffer)
		if nr > 0 {
			nw, ew := dst.Write(buffer[0:nr])
			if nw < 0 || nr < nw {
				nw = 0
				if ew == nil {
					ew = fmt.Errorf("invalid write result")
				}
			}
			written += int64(nw)
			if ew != nil {
				return written, ew
			}
			if nr != nw {
				return written, io.ErrShortWrite
			}

			// Clear previous progress line
			var eraseLine string
			if lastReportedMB != -1 {
				eraseLine = escseq.CursorEraseLine()
			}

			currentMB := written / conf.BytesPerMB
			if currentMB != lastReportedMB || written == totalSize {
				lastReportedMB = currentMB
				if totalSize > 0 {
					progress := float64(written) / float64(totalSize) * 100
					out.Printf("%s%s: %.1f%% (%.2f MB / %.2f MB)", eraseLine, operation, progress, float64(written)/conf.BytesPerMB, float64(totalSize)/conf.BytesPerMB)
				} else {
					out.Printf("%s%s: %.2f MB", eraseLine, operation, float64(written)/conf.BytesPerMB)
				}
			}
		}
		if er != nil {
			if er != io.EOF {
				return written, er
			}
			break
		}
	}
	return written, nil
}
