// Package vanity searches for secp256k1 key pairs whose base58 encoded
// public key starts with a chosen prefix.
//
// A [Searcher] runs a pool of workers. Each worker draws a random secret
// scalar, multiplies the generator through the shared basemul table,
// encodes the compressed public key in base58 and compares its prefix
// without regard to case. Matches are delivered on a channel until the
// context passed to [Searcher.Run] is cancelled.
//
//	s, err := vanity.New(&secp.Secp256k1{}, vanity.Config{Prefix: "abc"}, logger)
//	results := make(chan vanity.Result)
//	go s.Run(ctx, results)
//	for r := range results { ... }
//
// Matching keys can be stored with [WriteKey] and loaded with [ReadKey].
package vanity
