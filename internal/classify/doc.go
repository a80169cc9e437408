// Package classify turns loosely-structured fansub release filenames into a
// canonical identity: title, season, episode, and release group.
//
// The pipeline runs in one direction: a raw base name is normalized (release
// hashes and technical keywords erased), tokenized into delimiter-split
// segments, and then fed to four independent identifiers. Every identifier is
// a total function: ambiguous or missing metadata degrades to a documented
// default instead of failing.
//
// The keyword set and release-group registry are injected through the
// Classifier constructor so identifiers stay pure and testable against
// synthetic inputs.
package classify
