// Package swifftio streams arbitrarily large input through SWIFFT,
// 256-byte block at a time, folding each block's hash into a running
// accumulator via Hash.Add. It is the one place in this module that
// exercises SWIFFT's additive homomorphism as a genuine streaming
// primitive, and the one place that needs a real error return: reads
// from an arbitrary io.Reader can fail.
//
// This does not add a streaming/incremental mode to SWIFFT itself —
// the core compression function in package swifft stays a fixed
// 256-byte-in, fixed-N-coefficient-out call with no internal state
// carried between blocks. swifftio only chains independent calls to it
// and folds their outputs, the same way any caller composing multiple
// Hash values with Add would.
package swifftio

import (
	"fmt"
	"io"

	"github.com/breadbored/LibSWIFFT/swifft"
)

// HashReader reads r to completion in 256-byte blocks, zero-padding a
// short final block, and returns the additive fold of each block's
// unsigned SWIFFT hash: acc.Add(Compute(block)) for every block.
func HashReader(r io.Reader) (*swifft.Hash, error) {
	var zeroSign [swifft.InputBlockSize]byte
	return hashReader(r, nil, &zeroSign)
}

// HashReaderSigned is HashReader with a matching per-block sign-byte
// reader: sr is read one 256-byte block per input block, zero-padded
// the same way, and passed to ComputeSigned.
func HashReaderSigned(r, sr io.Reader) (*swifft.Hash, error) {
	return hashReader(r, sr, nil)
}

func hashReader(r, sr io.Reader, fixedSign *[swifft.InputBlockSize]byte) (*swifft.Hash, error) {
	var acc swifft.Hash
	var block, sign [swifft.InputBlockSize]byte

	for {
		n, err := io.ReadFull(r, block[:])
		if n == 0 && err == io.EOF {
			break
		}
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("swifftio: reading input block: %w", err)
		}
		for i := n; i < swifft.InputBlockSize; i++ {
			block[i] = 0
		}

		var signBlock *[swifft.InputBlockSize]byte
		if fixedSign != nil {
			signBlock = fixedSign
		} else {
			sn, serr := io.ReadFull(sr, sign[:])
			if serr != nil && serr != io.EOF && serr != io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("swifftio: reading sign block: %w", serr)
			}
			for i := sn; i < swifft.InputBlockSize; i++ {
				sign[i] = 0
			}
			signBlock = &sign
		}

		h := swifft.ComputeSigned(&block, signBlock)
		acc.Add(h)

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
	}

	return &acc, nil
}
