package identity

// product is the namespace prefix shared by every derived identifier.
// Frozen: see the package stability contract.
const product = "phonics-anki"

// Namespace tags one logical kind of note. The same curriculum item id under
// two different namespaces yields unrelated GUIDs, which is what lets an id
// be reused safely across note types.
type Namespace string

const (
	NamespaceSound            Namespace = "sound"
	NamespacePattern          Namespace = "pattern"
	NamespaceLetterCase       Namespace = "letter_case"
	NamespaceVisualConfusable Namespace = "visual_confusable"
	NamespaceAlphabetOrder    Namespace = "alphabet_order"
	NamespaceMinimalPair      Namespace = "minimal_pair"
)

// Model (note type) IDs, one per card family. Computed once at process start
// and reused for the lifetime of a generation run.
var (
	ModelIDSound            = hashToID(product + ":model:sound")
	ModelIDPattern          = hashToID(product + ":model:pattern")
	ModelIDLetterCase       = hashToID(product + ":model:letter_case")
	ModelIDVisualConfusable = hashToID(product + ":model:visual_confusable")
	ModelIDAlphabetOrder    = hashToID(product + ":model:alphabet_order")
	ModelIDMinimalPair      = hashToID(product + ":model:minimal_pair")
)

// Subdeck display names. Anki nests decks on the "::" separator. The display
// name doubles as the deck identity key (see DeckID), so treat these as
// semi-stable: renaming one is indistinguishable from creating a new deck.
const (
	DeckNameSounds            = "Phonics::1. Sounds (Core)"
	DeckNameSpellings         = "Phonics::2. Spellings (Graphemes)"
	DeckNamePatterns          = "Phonics::3. Patterns (Chunks/Rimes)"
	DeckNameAlphabetCase      = "Alphabet::1. Uppercase + Lowercase"
	DeckNameAlphabetOrder     = "Alphabet::2. Order (What Comes Next?)"
	DeckNameVisualConfusables = "Advanced::Visual Discrimination (Letters)"
	DeckNameMinimalPairs      = "Advanced::Minimal Pairs (Sound)"
)
