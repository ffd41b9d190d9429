package yamr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Block is a half-open byte range [Start, End) of the input file. Both ends
// sit on a line boundary or at the start/end of the file.
type Block struct {
	Index int   `json:"index"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Len returns the number of bytes in the block.
func (b Block) Len() int64 {
	return b.End - b.Start
}

const scanBufferSize = 4096

// SplitFile opens the input, measures it and computes m line-aligned blocks.
// It is the only place where a missing input aborts the whole run.
func SplitFile(path string, m int) (int64, []Block, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	blocks, err := ComputeBlocks(file, info.Size(), m)
	if err != nil {
		return 0, nil, fmt.Errorf("split %s: %w", path, err)
	}

	return info.Size(), blocks, nil
}

// AlignOffset moves a provisional block boundary forward to the start of the
// next line. Offset 0 is never moved. From any other offset it consumes bytes
// until a '\n' has been read and returns the position right after it, or size
// when the file ends first.
func AlignOffset(r io.ReaderAt, size, offset int64) (int64, error) {
	if offset <= 0 {
		return 0, nil
	}
	if offset >= size {
		return size, nil
	}

	buf := make([]byte, scanBufferSize)
	pos := offset
	for pos < size {
		n, err := r.ReadAt(buf, pos)
		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			return pos + int64(i) + 1, nil
		}
		pos += int64(n)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("scan for line end at %d: %w", offset, err)
		}
	}

	return size, nil
}

// ComputeBlocks splits [0, size) into m contiguous, line-aligned blocks of
// roughly size/m bytes each. Blocks may be empty when the file is smaller than
// m bytes or holds very long lines.
func ComputeBlocks(r io.ReaderAt, size int64, m int) ([]Block, error) {
	if m <= 0 {
		return nil, nil
	}

	blockSize := size / int64(m)

	boundaries := make([]int64, m+1)
	boundaries[m] = size
	for i := 1; i < m; i++ {
		aligned, err := AlignOffset(r, size, int64(i)*blockSize)
		if err != nil {
			return nil, err
		}
		boundaries[i] = aligned
	}

	blocks := make([]Block, m)
	for i := range blocks {
		blocks[i] = Block{Index: i, Start: boundaries[i], End: boundaries[i+1]}
	}

	return blocks, nil
}
