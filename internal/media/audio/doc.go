// Package audio ranks the audio streams of decoded media metadata.
//
// Primary picks the stream a viewer is most likely to want: streams in the
// preferred language come first (falling back to all audio when none match),
// then candidates are ranked by:
//  1. Channel count (8ch > 6ch > 4ch > 2ch)
//  2. Lossless codecs over lossy (TrueHD, DTS-HD MA, FLAC, PCM)
//  3. The default disposition
//
// Spatial formats (Atmos, DTS:X) are detected and reported but do not affect
// ranking.
package audio
