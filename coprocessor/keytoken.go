// Copyright (c) 2024 The libica-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coprocessor

import "encoding/binary"

// Key-usage tags for the private-key section, per spec §4.3.
const (
	keyUsageECDH  = 0xC0
	keyUsageECDSA = 0x80
)

const (
	keyFormatUnencrypted     = 0x40
	compressFlagUncompressed = 0x04
	tokenHeaderID            = 0x1E
	privateSectionID         = 0x20
	publicSectionID          = 0x21
)

// curveTypeFor maps a private-scalar length to the vendor curve-type tag
// used inside key tokens: the coprocessor distinguishes prime curves by a
// small integer rather than the full curve catalog. Restricted to the
// three Weierstrass curves this backend ever builds tokens for.
func curveTypeFor(privlen int) byte {
	switch privlen {
	case 32:
		return 1 // P-256
	case 48:
		return 2 // P-384
	case 66:
		return 3 // P-521
	default:
		return 0
	}
}

// bitlenFor returns priv_p_bitlen / pub_p_bitlen for privlen, with the
// P-521 special case (521 bits in 66 bytes) called out explicitly in
// spec §3.
func bitlenFor(privlen int) uint16 {
	if privlen == 66 {
		return 521
	}
	return uint16(privlen * 8)
}

// Fixed sub-structure sizes inside a key token, in bytes.
const (
	tokenHeaderLen        = 4  // CCA_TOKEN_HDR: id, version, length
	privateKeySectionLen  = 16 // ECC_PRIVATE_KEY_SECTION, excluding associated data and scalar
	associatedDataLen     = 10 // ECC_ASSOCIATED_DATA
	publicKeySectionLen   = 8  // ECC_PUBLIC_KEY_TOKEN, excluding compress flag and coordinates
)

// keyTokenLen returns the total byte length of a full private+public key
// token: header + private section + associated data + scalar + public
// section + compress flag + X‖Y. Used by ECDH and ECDSA-sign requests.
func keyTokenLen(privlen int) int {
	return tokenHeaderLen + privateKeySectionLen + associatedDataLen + privlen +
		publicKeySectionLen + 1 + 2*privlen
}

// putKeyToken writes a full private+public key token: CCA_TOKEN_HDR (id
// 0x1E) + ECC_PRIVATE_KEY_SECTION (id 0x20, key_usage, curve_type,
// key_format 0x40, priv_p_bitlen) + ECC_ASSOCIATED_DATA (usage_flag
// mirroring key_usage per Open Question (c)) + the privlen-byte scalar +
// ECC_PUBLIC_KEY_TOKEN (id 0x21, compress_flag 0x04, pub_q_bytelen) +
// X‖Y. keyUsage is 0xC0 for ECDH, 0x80 for ECDSA. Returns the number of
// bytes written, equal to keyTokenLen(privlen).
func putKeyToken(buf []byte, d, x, y []byte, privlen int, keyUsage byte) int {
	total := keyTokenLen(privlen)
	curveType := curveTypeFor(privlen)
	bitlen := bitlenFor(privlen)

	binary.BigEndian.PutUint16(buf[0:], uint16(total))
	buf[2] = tokenHeaderID
	buf[3] = 0x00 // token version

	privSecLen := privateKeySectionLen + associatedDataLen + privlen
	sec := buf[tokenHeaderLen:]
	sec[0] = privateSectionID
	sec[1] = 0x00 // section version
	binary.BigEndian.PutUint16(sec[2:], uint16(privSecLen))
	sec[4] = keyUsage
	sec[5] = curveType
	sec[6] = keyFormatUnencrypted
	binary.BigEndian.PutUint16(sec[7:], bitlen)
	binary.BigEndian.PutUint16(sec[9:], associatedDataLen)
	binary.BigEndian.PutUint16(sec[11:], associatedDataLen)
	binary.BigEndian.PutUint16(sec[13:], uint16(privlen))
	// byte 15 reserved

	adata := sec[privateKeySectionLen:]
	binary.BigEndian.PutUint16(adata[0:], associatedDataLen)
	adata[2] = curveType
	binary.BigEndian.PutUint16(adata[3:], bitlen)
	adata[5] = keyUsage
	adata[6] = keyFormatUnencrypted
	// bytes 7-9 reserved

	scalar := adata[associatedDataLen:]
	copy(scalar, d)

	pub := scalar[privlen:]
	pubSecLen := publicKeySectionLen + 1 + 2*privlen
	pub[0] = publicSectionID
	binary.BigEndian.PutUint16(pub[1:], uint16(pubSecLen))
	pub[3] = curveType
	binary.BigEndian.PutUint16(pub[4:], bitlen)
	binary.BigEndian.PutUint16(pub[6:], uint16(2*privlen+1))
	pub[publicKeySectionLen] = compressFlagUncompressed
	copy(pub[publicKeySectionLen+1:], x)
	copy(pub[publicKeySectionLen+1+privlen:], y)

	return total
}

// eckeygenSkeletonTokenLen returns the length of the private-key-only
// skeleton token sent in an ECKeyGen request: no scalar, no public
// section beyond its own zero-length header, matching spec §4.3's
// "skeleton private-key token (no scalar, no coordinates)".
func eckeygenSkeletonTokenLen() int {
	return tokenHeaderLen + privateKeySectionLen + associatedDataLen + publicKeySectionLen
}

// putEckeygenSkeletonToken writes the ECKeyGen request's skeleton
// private-key token: a private section with formatted_data_len 0 (no
// scalar present) directly followed by a public section with
// pub_q_bytelen 0 (no coordinates present), per spec §4.3.
func putEckeygenSkeletonToken(buf []byte, privlen int) int {
	total := eckeygenSkeletonTokenLen()
	curveType := curveTypeFor(privlen)
	bitlen := bitlenFor(privlen)

	binary.BigEndian.PutUint16(buf[0:], uint16(total))
	buf[2] = tokenHeaderID
	buf[3] = 0x00

	privSecLen := privateKeySectionLen + associatedDataLen
	sec := buf[tokenHeaderLen:]
	sec[0] = privateSectionID
	sec[1] = 0x00
	binary.BigEndian.PutUint16(sec[2:], uint16(privSecLen))
	sec[4] = keyUsageECDSA
	sec[5] = curveType
	sec[6] = keyFormatUnencrypted
	binary.BigEndian.PutUint16(sec[7:], bitlen)
	binary.BigEndian.PutUint16(sec[9:], associatedDataLen)
	binary.BigEndian.PutUint16(sec[11:], associatedDataLen)
	binary.BigEndian.PutUint16(sec[13:], 0) // formatted_data_len: no key yet

	adata := sec[privateKeySectionLen:]
	binary.BigEndian.PutUint16(adata[0:], associatedDataLen)
	adata[2] = curveType
	binary.BigEndian.PutUint16(adata[3:], bitlen)
	adata[5] = keyUsageECDSA
	adata[6] = keyFormatUnencrypted

	pub := adata[associatedDataLen:]
	pub[0] = publicSectionID
	binary.BigEndian.PutUint16(pub[1:], publicKeySectionLen)
	pub[3] = curveType
	binary.BigEndian.PutUint16(pub[4:], bitlen)
	binary.BigEndian.PutUint16(pub[6:], 0) // pub_q_bytelen: no keys yet

	return total
}

// parsePrivateKeyToken reads back the private section of a reply key
// token beginning at buf[0] (i.e. at the CCA_TOKEN_HDR), returning the
// scalar bytes (formatted_data_len long) and the byte offset of the
// section immediately following the private section (where the public
// section begins), per spec §4.3's ECKeyGen reply parsing.
func parsePrivateKeyToken(buf []byte) (scalar []byte, pubOff int) {
	sec := buf[tokenHeaderLen:]
	sectionLen := int(binary.BigEndian.Uint16(sec[2:]))
	formattedLen := int(binary.BigEndian.Uint16(sec[13:]))
	scalar = sec[privateKeySectionLen+associatedDataLen : privateKeySectionLen+associatedDataLen+formattedLen]
	return scalar, tokenHeaderLen + sectionLen
}

// parsePublicKeyToken reads back a public section at buf[off:], returning
// its compress flag and the X‖Y coordinate bytes implied by pub_q_bytelen.
// A section with pub_q_bytelen 0 carries neither; it yields flag 0 and nil.
func parsePublicKeyToken(buf []byte, off int) (compressFlag byte, xy []byte) {
	pub := buf[off:]
	qlen := int(binary.BigEndian.Uint16(pub[6:]))
	if qlen == 0 {
		return 0, nil
	}
	compressFlag = pub[publicKeySectionLen]
	return compressFlag, pub[publicKeySectionLen+1 : publicKeySectionLen+qlen]
}

// publicOnlyKeyTokenLen returns the length of a public-key-only token, as
// used by the ECDSA-verify request's key block.
func publicOnlyKeyTokenLen(privlen int) int {
	return tokenHeaderLen + publicKeySectionLen + 1 + 2*privlen
}

// putPublicOnlyKeyToken writes a key token containing only a public
// section: CCA_TOKEN_HDR + ECC_PUBLIC_KEY_TOKEN + compress flag + X‖Y.
func putPublicOnlyKeyToken(buf []byte, x, y []byte, privlen int) int {
	total := publicOnlyKeyTokenLen(privlen)
	curveType := curveTypeFor(privlen)
	bitlen := bitlenFor(privlen)

	binary.BigEndian.PutUint16(buf[0:], uint16(total))
	buf[2] = tokenHeaderID
	buf[3] = 0x00

	pub := buf[tokenHeaderLen:]
	pubSecLen := publicKeySectionLen + 1 + 2*privlen
	pub[0] = publicSectionID
	binary.BigEndian.PutUint16(pub[1:], uint16(pubSecLen))
	pub[3] = curveType
	binary.BigEndian.PutUint16(pub[4:], bitlen)
	binary.BigEndian.PutUint16(pub[6:], uint16(2*privlen+1))
	pub[publicKeySectionLen] = compressFlagUncompressed
	copy(pub[publicKeySectionLen+1:], x)
	copy(pub[publicKeySectionLen+1+privlen:], y)

	return total
}

// nullKeyToken is the 2-byte sentinel used as filler between key tokens
// in an ECDH request, per spec §3's glossary entry.
var nullKeyToken = [2]byte{0x00, 0x44}

func putNullKeyToken(buf []byte) int {
	copy(buf, nullKeyToken[:])
	return len(nullKeyToken)
}

// eccNullTokenLen is the size of the ECC-null token appended to an
// ECKeyGen parameter block after the skeleton private-key token.
const eccNullTokenLen = 5

func putECCNullToken(buf []byte) int {
	binary.BigEndian.PutUint16(buf[0:], 0x0005)
	binary.BigEndian.PutUint16(buf[2:], 0x0010)
	buf[4] = 0x00
	return eccNullTokenLen
}
