/*
Package passlock provides an AES-GCM engine keyed from a passphrase, intended as the stronger replacement for the vigenere screen.

# How it works:

A key and salt is generated from the given passphrase with scrypt. The salt is appended to the encrypted payload so the same key can be derived later given the same passphrase.
Scrypt is memory and CPU hard, so it's impractical to brute force the salt to get the original passphrase, provided that sufficient tuning values are provided to the KeyGenerator.

The KeyGenerator settings are written ahead of the payload by Engine, and must match the decrypting Engine's settings.
This keeps a payload from forcing a different (possibly enormous) scrypt cost on the receiver.

# General guidelines:
  - Both short and long delay iteration GeneratorOpt functions are provided, choose the correct iterations for your use-case using either SetLongDelayIterations or SetShortDelayIterations.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
  - AES-GCM supports encrypting and authenticating at most about 64GB at a time, which is far beyond any transport payload.
*/
package passlock
