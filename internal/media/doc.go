// Package media resolves and tracks the audio and image files bundled into
// generated packages.
//
// # Manifest
//
// The manifest is a JSON file keyed by media key, storing the generation
// parameters and output filename of each asset. A build consults it through
// NeedsRegeneration to skip assets whose inputs have not changed — the
// idempotent cache-or-generate pattern. The file is human-readable and safe
// to inspect or delete; deleting it only forces regeneration.
//
// # Resolution
//
// The resolver maps curriculum words to local files via the manifest first
// and conventional filename patterns second. Missing media is collected and
// reported as a warning; it never blocks deck generation.
package media
