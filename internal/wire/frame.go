package wire

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Frame is one complete response unit read off the daemon's stdout:
// the type order mark plus the raw payload bytes (trailing newline stripped).
type Frame struct {
	TypeMark string
	Payload  []byte
}

// ReadFrame assembles one complete frame from the stream.
//
// The daemon emits a three-byte type order mark line, then a line holding the
// number of newlines contained in the payload, then the payload itself. Since
// payloads may themselves contain newlines, the count line tells us how many
// additional lines belong to the current frame. Partial reads are handled by
// the buffered reader; ReadFrame blocks until the frame is complete or the
// stream ends.
func ReadFrame(br *bufio.Reader) (Frame, error) {
	tomLine, err := readLine(br)
	if err != nil {
		return Frame{}, err
	}

	tom := string(bytes.TrimRight(tomLine, "\n"))
	if len(tom) != 3 {
		return Frame{}, fmt.Errorf("malformed type order mark line %q", tom)
	}

	countLine, err := readLine(br)
	if err != nil {
		return Frame{}, frameEOF(err)
	}

	count, err := strconv.Atoi(string(bytes.TrimRight(countLine, "\n")))
	if err != nil || count < 0 {
		return Frame{}, fmt.Errorf("malformed payload line count %q", bytes.TrimRight(countLine, "\n"))
	}

	var payload bytes.Buffer

	for i := 0; i <= count; i++ {
		part, err := readLine(br)
		if err != nil {
			return Frame{}, frameEOF(err)
		}

		payload.Write(part)
	}

	// The final line's newline is the frame terminator, not payload content.
	content := bytes.TrimSuffix(payload.Bytes(), []byte("\n"))

	return Frame{TypeMark: tom, Payload: content}, nil
}

// readLine reads through the next newline, returning the bytes including it.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	return line, nil
}

// frameEOF maps a clean EOF in the middle of a frame to ErrUnexpectedEOF:
// the frame header promised more data than the stream delivered.
func frameEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
