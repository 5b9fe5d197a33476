package types

// FNV-1a mixing. Hashes are structural so they agree with Equal across
// registries; canonical pointers are not part of the hash.

const (
	fnvOffset = 0xcbf29ce484222325
	fnvPrime  = 0x100000001b3
)

func hashKind(k Kind) uint64 {
	return hashMix(fnvOffset, uint64(k))
}

func hashMix(h, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h ^= v & 0xff
		h *= fnvPrime
		v >>= 8
	}

	return h
}

func hashStr(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}

	return hashMix(h, uint64(len(s)))
}

func hashType(h uint64, t Type) uint64 {
	if t == nil {
		return hashMix(h, 0)
	}

	return hashMix(h, t.Hash())
}
