package host

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"

	base64mix "github.com/wippyai/base64mix"
)

// wrapMemory adapts wazero api.Memory to the base64mix.Memory interface.
func wrapMemory(mem api.Memory) base64mix.Memory {
	if mem == nil {
		return nil
	}
	return &memoryWrapper{mem: mem}
}

type memoryWrapper struct {
	mem api.Memory
}

func (m *memoryWrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

func (m *memoryWrapper) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}
