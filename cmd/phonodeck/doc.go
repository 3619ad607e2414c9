// Command phonodeck generates an Anki flashcard package from a phonics
// curriculum file.
package main
