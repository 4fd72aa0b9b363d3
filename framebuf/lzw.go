package framebuf

import "errors"

// errLZWEnd is returned by getNextCode when the image's data sub-blocks are
// exhausted (the end code itself is reported by getNextByte as -2);
// dispImage reports it as ErrGifFrame.
var errLZWEnd = errors.New("framebuf: lzw end code")

// lzwMaskTbl extracts the low n bits of a code for n in [0,15] (spec.md §4.G).
var lzwMaskTbl = [16]uint16{
	0x0000, 0x0001, 0x0003, 0x0007,
	0x000F, 0x001F, 0x003F, 0x007F,
	0x00FF, 0x01FF, 0x03FF, 0x07FF,
	0x0FFF, 0x1FFF, 0x3FFF, 0x7FFF,
}

const lzwTableSize = 1 << 12 // 4096

// lzwDecoder implements the classic variable-width Welch LZW decompressor
// with GIF's specific code-size-growth and clear-code conventions
// (spec.md §3, §4.G). Every field lives on the value — no package-level
// mutable state — so multiple sessions can run concurrently in separate
// goroutines (spec.md §9's non-reentrancy note).
type lzwDecoder struct {
	setCodeSize int
	codeSize    int
	clearCode   int
	endCode     int
	maxCode     int
	maxCodeSize int

	curBit      int
	lastBit     int
	lastByte    int
	getDone     bool
	returnClear bool

	firstCode int
	oldCode   int

	buffer [280]byte
	stack  [lzwTableSize]byte
	sp     int // stack pointer into the decompression stack above

	prefix [lzwTableSize]int
	suffix [lzwTableSize]int

	// nextBlock reads the next GIF sub-block (length byte + payload) into
	// dst, returning the payload length (0 at the block terminator).
	nextBlock func(dst []byte) (int, error)
}

func newLZWDecoder(codeSize int, nextBlock func(dst []byte) (int, error)) *lzwDecoder {
	d := &lzwDecoder{nextBlock: nextBlock}
	d.setCodeSize = codeSize
	d.codeSize = codeSize + 1
	d.clearCode = 1 << uint(codeSize)
	d.endCode = d.clearCode + 1
	d.maxCodeSize = 2 * d.clearCode
	d.maxCode = d.clearCode + 2
	d.getDone = false
	d.returnClear = true
	d.lastByte = 2
	d.lastBit = 0
	d.curBit = 0
	return d
}

// getNextCode reads codeSize bits from the sliding window, refilling from
// the underlying sub-blocks when the window runs dry (spec.md §4.G).
func (d *lzwDecoder) getNextCode() (int, error) {
	if d.returnClear {
		d.returnClear = false
		return d.clearCode, nil
	}

	if d.curBit+d.codeSize >= d.lastBit {
		if d.getDone {
			return -1, errLZWEnd
		}
		d.buffer[0] = d.buffer[d.lastByte-2]
		d.buffer[1] = d.buffer[d.lastByte-1]

		count, err := d.nextBlock(d.buffer[2:])
		if err != nil {
			return -1, err
		}
		if count == 0 {
			d.getDone = true
		}
		d.lastByte = 2 + count
		d.curBit = (d.curBit - d.lastBit) + 16
		d.lastBit = (2 + count) * 8
	}

	ret := 0
	curByte := d.curBit / 8
	for i, shift := curByte, 0; i <= curByte+((d.codeSize+7)/8); i++ {
		if i >= len(d.buffer) {
			break
		}
		ret |= int(d.buffer[i]) << uint(shift)
		shift += 8
	}
	ret >>= uint(d.curBit % 8)
	d.curBit += d.codeSize

	return int(uint16(ret) & lzwMaskTbl[d.codeSize]), nil
}

// getNextByte is the coroutine-style output yielder: it first drains the
// decompression stack, then pulls and expands one code. It returns -2 at
// the end code (spec.md §4.G). Every branch below returns — the dictionary
// walk never needs to loop back for another code within a single call,
// matching the source's structure (its enclosing `while` only ever runs
// its body once in practice, since that body always returns).
func (d *lzwDecoder) getNextByte() (int, error) {
	if d.sp > 0 {
		d.sp--
		return int(d.stack[d.sp]), nil
	}

	code, err := d.getNextCode()
	if err != nil {
		return -1, err
	}

	if code == d.clearCode {
		for i := 0; i < lzwTableSize; i++ {
			d.prefix[i] = 0
		}
		for i := 0; i < d.clearCode; i++ {
			d.suffix[i] = i
		}
		d.codeSize = d.setCodeSize + 1
		d.maxCodeSize = 2 * d.clearCode
		d.maxCode = d.clearCode + 2
		d.sp = 0

		for {
			d.firstCode, err = d.getNextCode()
			if err != nil {
				return -1, err
			}
			if d.firstCode != d.clearCode {
				break
			}
		}
		d.oldCode = d.firstCode
		return d.firstCode, nil
	}

	if code == d.endCode {
		return -2, nil
	}

	inCode := code
	if code >= d.maxCode {
		d.stack[d.sp] = byte(d.firstCode)
		d.sp++
		code = d.oldCode
	}

	for code >= d.clearCode {
		d.stack[d.sp] = byte(d.suffix[code])
		d.sp++
		if code == d.prefix[code] {
			// cycle guard: the source returns the raw code here rather
			// than a dictionary-resolved byte.
			return code, nil
		}
		if d.sp >= lzwTableSize {
			// stack-overflow guard, same early return as the cycle guard.
			return code, nil
		}
		code = d.prefix[code]
	}

	d.firstCode = d.suffix[code]
	d.stack[d.sp] = byte(d.firstCode)
	d.sp++

	if d.maxCode < lzwTableSize {
		d.prefix[d.maxCode] = d.oldCode
		d.suffix[d.maxCode] = d.firstCode
		d.maxCode++
		if d.maxCode >= d.maxCodeSize && d.maxCodeSize < lzwTableSize {
			d.maxCodeSize *= 2
			d.codeSize++
		}
	}

	d.oldCode = inCode

	d.sp--
	return int(d.stack[d.sp]), nil
}
