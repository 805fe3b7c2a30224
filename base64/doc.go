// Package base64 implements Base64 encoding and decoding with
// configurable alphabets, padding, and validation policies.
//
// The predefined Standards cover RFC 4648 (sections 4 and 5),
// the modified Base64 of RFC 3501, and the unpadded Base64 of
// RFC 2152. Other alphabets can be created with NewStandard.
//
// Comparison to encoding/base64
//
// Encoding with a predefined Standard produces exactly the same
// output as the matching encoding/base64 Encoding.
//
// Decoding differs in a few ways:
//
//    - Padding characters are never treated as data, and unless
//      the Standard is strict they are accepted anywhere in the
//      input and in any number. Use Strict to require canonical
//      padding and zero trailing bits.
//    - A lenient Standard (see Lenient) skips every byte that is
//      not part of its alphabet, not just '\r' and '\n'.
//    - A non-lenient Standard rejects '\r' and '\n'.
//    - Input that leaves a single trailing symbol is rejected
//      with ErrInvalidLength.
//
// For example:
//
//    RFC4648.DecodeString("TWFu")                // "Man", nil
//    RFC4648.DecodeString("!@#$TWFu")            // nil, ErrInvalidCharacter
//    RFC4648.Lenient().DecodeString("!@#$TWFu")  // "Man", nil
//    RFC4648.Strict().DecodeString("TQ")         // nil, ErrInvalidPadding
//
package base64
