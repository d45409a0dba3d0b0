package utils

// Chunk splits items into consecutive slices of at most size elements.
// The last chunk holds the remainder. The chunks share the backing array of items.
// A size below 1 yields a single chunk with every item.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		size = len(items)
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}
