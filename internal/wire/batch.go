package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/campusforge/timetable/pkg/model"
)

// Sentinel values the coordinator sends in place of a real dispatch. Both
// are negative, so they are distinguishable from any legitimate
// num_scheduled count, which is always >= 0.
const (
	SentinelWait      int32 = -2
	SentinelTerminate int32 = -1
)

// EncodeSentinel frames a bare sentinel the same way a dispatch's leading
// count is framed, so a worker can read one int32 and branch on its sign
// before deciding whether to call DecodeBatch at all.
func EncodeSentinel(v int32) []byte {
	var buf bytes.Buffer
	writeInt32(&buf, v)
	return buf.Bytes()
}

// PeekNumScheduled reads the leading int32 of a coordinator reply: either a
// sentinel (negative) or the num_scheduled count of a real dispatch (>= 0).
func PeekNumScheduled(body []byte) (int32, error) {
	r := bytes.NewReader(body)
	return readInt32(r)
}

// EncodeBatch frames a coordinator dispatch: an int32 count of
// already-scheduled sessions, each one individually length-prefixed (the
// batch is the outer transport layer that supplies session boundaries the
// bare codec relies on its caller to know), followed by the
// length-prefixed task session.
func EncodeBatch(scheduled []model.ClassSession, task model.ClassSession) []byte {
	var buf bytes.Buffer
	writeInt32(&buf, int32(len(scheduled)))
	for _, s := range scheduled {
		writeFramed(&buf, s)
	}
	writeFramed(&buf, task)
	return buf.Bytes()
}

// DecodeBatch is EncodeBatch's inverse.
func DecodeBatch(data []byte) (scheduled []model.ClassSession, task model.ClassSession, err error) {
	r := bytes.NewReader(data)
	count, err := readInt32(r)
	if err != nil {
		return nil, model.ClassSession{}, fmt.Errorf("wire: batch count: %w", err)
	}
	scheduled = make([]model.ClassSession, 0, count)
	for i := int32(0); i < count; i++ {
		s, err := readFramed(r)
		if err != nil {
			return nil, model.ClassSession{}, fmt.Errorf("wire: batch scheduled[%d]: %w", i, err)
		}
		scheduled = append(scheduled, s)
	}
	task, err = readFramed(r)
	if err != nil {
		return nil, model.ClassSession{}, fmt.Errorf("wire: batch task: %w", err)
	}
	return scheduled, task, nil
}

func writeFramed(buf *bytes.Buffer, s model.ClassSession) {
	encoded := Encode(s)
	writeInt32(buf, int32(len(encoded)))
	buf.Write(encoded)
}

func readFramed(r *bytes.Reader) (model.ClassSession, error) {
	length, err := readInt32(r)
	if err != nil {
		return model.ClassSession{}, err
	}
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return model.ClassSession{}, err
		}
	}
	return Decode(buf)
}
