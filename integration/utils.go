package integration

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/go-faker/faker/v4"
)

// generatePayloads builds size byte blobs of generated prose, so that the
// codecs see realistic, compressible input.
func generatePayloads(size int) [][]byte {
	res := make([][]byte, 0, size)
	for i := 0; i < size; i++ {
		sentences := 1 + rand.Intn(8)
		var payload []byte
		for j := 0; j < sentences; j++ {
			payload = append(payload, randomSentence()...)
		}
		res = append(res, payload)
	}
	return res
}

func randomSentence() string {
	quote := struct {
		Sentence string `faker:"sentence"`
	}{}

	err := faker.FakeData(&quote)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return quote.Sentence
}

// memObject is a block file held in memory, writable first and readable once
// finished.
type memObject struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	finished bool
}

func newMemObject() *memObject {
	return &memObject{}
}

func (m *memObject) Write(p []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.finished {
		return fmt.Errorf("file is closed")
	}
	m.buf.Write(p)
	return nil
}

func (m *memObject) Finish() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = true
	return nil
}

func (m *memObject) Abort() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.finished = true
	m.buf.Reset()
}

func (m *memObject) ReadAt(_ context.Context, p []byte, off int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if off < 0 || off+int64(len(p)) > int64(m.buf.Len()) {
		return fmt.Errorf("read past end of file")
	}
	copy(p, m.buf.Bytes()[off:])
	return nil
}

func (m *memObject) Size() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint64(m.buf.Len())
}

func (m *memObject) Close() error {
	return nil
}
