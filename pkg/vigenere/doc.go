/*
Package vigenere provides a repeating-key additive stream screen for obscuring text payloads before transport.

Note that this is NOT encryption in any meaningful sense.
The key is short, static, and usually human-chosen, and the screen is trivially broken by known-plaintext or frequency analysis.
It exists to stay bit-for-bit compatible with payloads produced by existing clients, and must not be presented as providing confidentiality.

# How it works:

Encoding a string happens in three stages:
  - The UTF-8 bytes of the plaintext are Base64 encoded into a staging string, so the screen only ever sees ASCII.
  - Each staging byte is shifted by the key byte at the same position, modulo 256. The key repeats like a ring buffer.
  - The shifted bytes are Base64 encoded again so the result is safe for headers, JSON fields, and other text protocols.

Decoding reverses each stage, subtracting the key instead of adding it.
Any failure along the way (malformed Base64, a staging string that doesn't decode, or plaintext that isn't UTF-8) is reported as ErrDecode.

# Key handling:

A key's UTF-16 code units form the keystream, reduced modulo 256.
An empty key is rejected by New, and DefaultKey is used by NewDefault.
The same key must be used to decode as was used to encode.

The Reader and Writer types expose the shifting stage on its own for streaming use, with an optional starting offset into the key.
*/
package vigenere
