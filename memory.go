package base64mix

// Memory is the view of guest linear memory the host binding operates on.
// Implementations return an error instead of silently truncating when a
// range falls outside the guest's memory.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
}
