// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package downsample

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bedpe/encoding/bedpe"
)

// NewRand returns the random source used by Sample.  All 64 bits of seed
// select the stream.  If seeded is false, seed is ignored and a fresh seed is
// drawn from process entropy.
func NewRand(seed uint64, seeded bool) *rand.Rand {
	if !seeded {
		seed = entropySeed()
		log.Debug.Printf("sampling with entropy seed %d", seed)
	}
	return rand.New(rand.NewPCG(seed, 0))
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		log.Error.Printf("crypto/rand: %v; seeding from the clock", err)
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

func checkFraction(frac float64) error {
	// Written so that NaN fails.
	if !(frac > 0 && frac <= 1) {
		return bedpe.NewError(bedpe.SampleError, "sample", "",
			errors.E(errors.Invalid, fmt.Sprintf("fraction %v outside (0, 1]", frac)))
	}
	return nil
}

// SampleSize returns the number of records Sample keeps out of n:
// frac*n rounded toward zero.
func SampleSize(n int, frac float64) int {
	return int(frac * float64(n))
}

// SampleIndices draws SampleSize(n, frac) distinct indices from [0, n),
// uniformly at random and without replacement.  The indices are returned in
// the order they were drawn.
func SampleIndices(n int, frac float64, r *rand.Rand) ([]int, error) {
	if err := checkFraction(frac); err != nil {
		return nil, err
	}
	k := SampleSize(n, frac)
	if k > n {
		return nil, bedpe.NewError(bedpe.SampleError, "sample", "",
			errors.E(errors.Invalid, fmt.Sprintf("cannot draw %d of %d records without replacement", k, n)))
	}
	// Partial Fisher-Yates: perm[:i] holds the first i draws.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k], nil
}

// Sample returns a uniformly random subset of t of SampleSize(t.NumRows(),
// frac) records, drawn without replacement.  An empty table yields an empty
// table.
func Sample(t *bedpe.Table, frac float64, r *rand.Rand) (*bedpe.Table, error) {
	indices, err := SampleIndices(t.NumRows(), frac, r)
	if err != nil {
		return nil, err
	}
	return t.Take(indices), nil
}
