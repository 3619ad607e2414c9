package deck

import "phonodeck/internal/identity"

// Template is one card template inside a note model: a question side and an
// answer side in Anki's mustache-style syntax.
type Template struct {
	Name     string
	Question string
	Answer   string
}

// Model describes an Anki note type: its stable ID, ordered field names,
// card templates, and styling.
type Model struct {
	ID        int64
	Name      string
	Fields    []string
	Templates []Template
	CSS       string
}

// baseCSS is the card frame shared by every model.
const baseCSS = `.card {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    font-size: 24px;
    text-align: center;
    color: #333;
    background-color: #f5f5f5;
    padding: 20px;
}
`

// SoundModel is the phoneme-first card: hear a sound, see its spellings and
// example words. The two audio fields stay empty until recordings exist.
func SoundModel() Model {
	return Model{
		ID:   identity.ModelIDSound,
		Name: "Phonics Sound",
		Fields: []string{
			"IPA", "SoundLabel", "Graphemes", "FrontExample",
			"AllExamples", "Notes", "FrontExampleAudio", "AllExamplesAudio",
		},
		Templates: []Template{{
			Name: "Sound Recognition",
			Question: `<div class="front">
    <div class="sound-label">{{SoundLabel}}</div>
    <div class="ipa">{{IPA}}</div>
    <div class="example-word">{{FrontExample}}</div>
    <div class="audio">{{FrontExampleAudio}}</div>
</div>
`,
			Answer: `{{FrontSide}}
<hr id="answer">
<div class="back">
    <div class="spellings">Spellings: {{Graphemes}}</div>
    <div class="examples">
        <strong>Examples:</strong><br>
        {{AllExamples}}
    </div>
    {{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}
</div>
`,
		}},
		CSS: baseCSS + `.front {
    margin-bottom: 20px;
}
.sound-label {
    font-size: 32px;
    font-weight: bold;
    color: #2196F3;
    margin-bottom: 10px;
}
.ipa {
    font-size: 28px;
    font-family: "Lucida Sans Unicode", "DejaVu Sans", sans-serif;
    color: #666;
    margin-bottom: 15px;
}
.example-word {
    font-size: 36px;
    font-weight: bold;
    color: #4CAF50;
    padding: 20px;
    background-color: white;
    border-radius: 10px;
    display: inline-block;
}
.back {
    text-align: left;
    padding: 15px;
    background-color: white;
    border-radius: 10px;
}
.spellings {
    font-size: 20px;
    color: #FF9800;
    margin-bottom: 10px;
}
.examples {
    font-size: 20px;
    margin-bottom: 10px;
}
.notes {
    font-size: 16px;
    color: #888;
    font-style: italic;
    margin-top: 10px;
}
`,
	}
}

// PatternModel is the grapheme-first card: see a spelling chunk, recall the
// sound it makes.
func PatternModel() Model {
	return Model{
		ID:   identity.ModelIDPattern,
		Name: "Phonics Pattern",
		Fields: []string{
			"Grapheme", "IPA", "FrontExample", "AllExamples",
			"Notes", "FrontExampleAudio", "AllExamplesAudio",
		},
		Templates: []Template{{
			Name: "Pattern Recognition",
			Question: `<div class="front">
    <div class="grapheme">{{Grapheme}}</div>
    <div class="prompt">What sound does this make?</div>
</div>
`,
			Answer: `{{FrontSide}}
<hr id="answer">
<div class="back">
    <div class="ipa">{{IPA}}</div>
    <div class="example-word">{{FrontExample}}</div>
    <div class="audio">{{FrontExampleAudio}}</div>
    <div class="examples">
        <strong>More examples:</strong><br>
        {{AllExamples}}
    </div>
    {{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}
</div>
`,
		}},
		CSS: baseCSS + `.front {
    margin-bottom: 20px;
}
.grapheme {
    font-size: 72px;
    font-weight: bold;
    color: #9C27B0;
    padding: 30px;
    background-color: white;
    border-radius: 15px;
    display: inline-block;
    margin-bottom: 20px;
}
.prompt {
    font-size: 20px;
    color: #666;
}
.back {
    text-align: center;
    padding: 15px;
}
.ipa {
    font-size: 32px;
    font-family: "Lucida Sans Unicode", "DejaVu Sans", sans-serif;
    color: #2196F3;
    margin-bottom: 15px;
}
.example-word {
    font-size: 36px;
    font-weight: bold;
    color: #4CAF50;
    padding: 20px;
    background-color: white;
    border-radius: 10px;
    display: inline-block;
    margin-bottom: 15px;
}
.examples {
    font-size: 20px;
    text-align: left;
    background-color: white;
    padding: 15px;
    border-radius: 10px;
    margin-bottom: 10px;
}
.notes {
    font-size: 16px;
    color: #888;
    font-style: italic;
}
`,
	}
}

// LetterCaseModel pairs each letter's uppercase and lowercase forms, with a
// card in each direction.
func LetterCaseModel() Model {
	return Model{
		ID:     identity.ModelIDLetterCase,
		Name:   "Alphabet Letter Case",
		Fields: []string{"Upper", "Lower", "LetterName", "LetterNameAudio"},
		Templates: []Template{
			{
				Name: "Upper to Lower",
				Question: `<div class="front">
    <div class="prompt">What is the lowercase of:</div>
    <div class="letter upper">{{Upper}}</div>
</div>
`,
				Answer: `{{FrontSide}}
<hr id="answer">
<div class="back">
    <div class="letter lower">{{Lower}}</div>
</div>
`,
			},
			{
				Name: "Lower to Upper",
				Question: `<div class="front">
    <div class="prompt">What is the uppercase of:</div>
    <div class="letter lower">{{Lower}}</div>
</div>
`,
				Answer: `{{FrontSide}}
<hr id="answer">
<div class="back">
    <div class="letter upper">{{Upper}}</div>
</div>
`,
			},
		},
		CSS: baseCSS + `.front {
    margin-bottom: 20px;
}
.prompt {
    font-size: 20px;
    color: #666;
    margin-bottom: 20px;
}
.letter {
    font-size: 96px;
    font-weight: bold;
    padding: 30px 50px;
    background-color: white;
    border-radius: 15px;
    display: inline-block;
}
.letter.upper {
    color: #E91E63;
}
.letter.lower {
    color: #00BCD4;
}
.back {
    padding: 15px;
}
`,
	}
}

// VisualConfusableModel drills letter pairs that look alike (b/d, p/q), one
// "which one is X" card per side.
func VisualConfusableModel() Model {
	return Model{
		ID:     identity.ModelIDVisualConfusable,
		Name:   "Visual Confusable",
		Fields: []string{"Left", "Right", "Notes", "Hint"},
		Templates: []Template{
			{
				Name: "Which is Left",
				Question: `<div class="front">
    <div class="prompt">Which one is <strong>{{Left}}</strong>?</div>
    <div class="choices">
        <span class="choice">{{Left}}</span>
        <span class="choice">{{Right}}</span>
    </div>
</div>
`,
				Answer: `<div class="back">
    <div class="prompt">Which one is <strong>{{Left}}</strong>?</div>
    <div class="choices">
        <span class="choice correct">{{Left}}</span>
        <span class="choice wrong">{{Right}}</span>
    </div>
    {{#Hint}}<div class="hint">Hint: {{Hint}}</div>{{/Hint}}
</div>
`,
			},
			{
				Name: "Which is Right",
				Question: `<div class="front">
    <div class="prompt">Which one is <strong>{{Right}}</strong>?</div>
    <div class="choices">
        <span class="choice">{{Left}}</span>
        <span class="choice">{{Right}}</span>
    </div>
</div>
`,
				Answer: `<div class="back">
    <div class="prompt">Which one is <strong>{{Right}}</strong>?</div>
    <div class="choices">
        <span class="choice wrong">{{Left}}</span>
        <span class="choice correct">{{Right}}</span>
    </div>
    {{#Hint}}<div class="hint">Hint: {{Hint}}</div>{{/Hint}}
</div>
`,
			},
		},
		CSS: baseCSS + `.front, .back {
    margin-bottom: 20px;
}
.prompt {
    font-size: 24px;
    color: #333;
    margin-bottom: 30px;
}
.choices {
    display: flex;
    justify-content: center;
    gap: 40px;
}
.choice {
    font-size: 72px;
    font-weight: bold;
    padding: 30px 50px;
    background-color: white;
    border-radius: 15px;
    color: #333;
}
.choice.correct {
    background-color: #4CAF50;
    color: white;
}
.choice.wrong {
    background-color: #f5f5f5;
    color: #999;
}
.hint {
    font-size: 18px;
    color: #666;
    font-style: italic;
    margin-top: 20px;
}
`,
	}
}

// AlphabetOrderModel is the "what comes next?" sequence card.
func AlphabetOrderModel() Model {
	return Model{
		ID:     identity.ModelIDAlphabetOrder,
		Name:   "Alphabet Order",
		Fields: []string{"Prompt", "Answer", "Position"},
		Templates: []Template{{
			Name: "What Comes Next",
			Question: `<div class="front">
    <div class="instruction">What comes next?</div>
    <div class="sequence">{{Prompt}}</div>
</div>
`,
			Answer: `{{FrontSide}}
<hr id="answer">
<div class="back">
    <div class="answer">{{Answer}}</div>
</div>
`,
		}},
		CSS: baseCSS + `.front {
    margin-bottom: 20px;
}
.instruction {
    font-size: 20px;
    color: #666;
    margin-bottom: 30px;
}
.sequence {
    font-size: 48px;
    font-weight: bold;
    font-family: "SF Mono", "Monaco", "Menlo", monospace;
    letter-spacing: 8px;
    color: #333;
    padding: 30px;
    background-color: white;
    border-radius: 15px;
    display: inline-block;
}
.back {
    padding: 15px;
}
.answer {
    font-size: 72px;
    font-weight: bold;
    color: #4CAF50;
    padding: 20px 40px;
    background-color: white;
    border-radius: 15px;
    display: inline-block;
}
`,
	}
}

// MinimalPairModel is the AB discrimination card: play one recording, choose
// which of two (optionally three) words was heard. Templates three through
// six only produce cards when the Word3 / CompareWord2ToWord3 fields are
// non-empty, so two-word pairs yield exactly two cards.
func MinimalPairModel() Model {
	return Model{
		ID:   identity.ModelIDMinimalPair,
		Name: "Minimal Pair",
		Fields: []string{
			"Word1", "Recording1", "Word1IPA",
			"Word2", "Recording2", "Word2IPA",
			"Word3", "Recording3", "Word3IPA",
			"CompareWord2ToWord3", "Notes",
		},
		Templates: []Template{
			minimalPairTemplate("Word 1 vs Word 2 (hear 1)", "", "Word1", "Word2", "Recording1", "Word1"),
			minimalPairTemplate("Word 1 vs Word 2 (hear 2)", "", "Word1", "Word2", "Recording2", "Word2"),
			minimalPairTemplate("Word 1 vs Word 3 (hear 3)", "Word3", "Word1", "Word3", "Recording3", "Word3"),
			minimalPairTemplate("Word 1 vs Word 3 (hear 1)", "Word3", "Word1", "Word3", "Recording1", "Word1"),
			minimalPairTemplate("Word 2 vs Word 3 (hear 2)", "CompareWord2ToWord3", "Word2", "Word3", "Recording2", "Word2"),
			minimalPairTemplate("Word 2 vs Word 3 (hear 3)", "CompareWord2ToWord3", "Word2", "Word3", "Recording3", "Word3"),
		},
		CSS: baseCSS + `.front, .back {
    margin-bottom: 20px;
}
.prompt {
    font-size: 24px;
    color: #333;
    margin-bottom: 20px;
}
.audio {
    margin: 20px 0;
}
.choices {
    display: flex;
    justify-content: center;
    gap: 30px;
    margin-top: 20px;
}
.choice {
    font-size: 36px;
    font-weight: bold;
    padding: 20px 40px;
    background-color: white;
    border-radius: 15px;
    color: #333;
}
.answer {
    display: flex;
    flex-direction: column;
    align-items: center;
    gap: 10px;
}
.choice.correct {
    font-size: 48px;
    background-color: #4CAF50;
    color: white;
    padding: 25px 50px;
}
.ipa {
    font-size: 24px;
    font-family: "Lucida Sans Unicode", "DejaVu Sans", sans-serif;
    color: #666;
}
`,
	}
}

// minimalPairTemplate builds one discrimination card: hear `recording`,
// choose between fields a and b, with `correct` revealed on the back. A
// non-empty gate field wraps the whole card in a conditional section so the
// card only exists when that field is filled in.
func minimalPairTemplate(name, gate, a, b, recording, correct string) Template {
	question := `<div class="front">
    <div class="prompt">Do you hear <strong>{{` + a + `}}</strong> or <strong>{{` + b + `}}</strong>?</div>
    <div class="audio">{{` + recording + `}}</div>
    <div class="choices">
        <span class="choice">{{` + a + `}}</span>
        <span class="choice">{{` + b + `}}</span>
    </div>
</div>
`
	answer := `<div class="back">
    <div class="prompt">Do you hear <strong>{{` + a + `}}</strong> or <strong>{{` + b + `}}</strong>?</div>
    <div class="audio">{{` + recording + `}}</div>
    <div class="answer">
        <span class="choice correct">{{` + correct + `}}</span>
        <span class="ipa">{{` + correct + `IPA}}</span>
    </div>
</div>
`
	if gate != "" {
		question = "{{#" + gate + "}}\n" + question + "{{/" + gate + "}}\n"
		answer = "{{#" + gate + "}}\n" + answer + "{{/" + gate + "}}\n"
	}
	return Template{Name: name, Question: question, Answer: answer}
}

// Models returns every note model in a fixed order.
func Models() []Model {
	return []Model{
		SoundModel(),
		PatternModel(),
		LetterCaseModel(),
		VisualConfusableModel(),
		AlphabetOrderModel(),
		MinimalPairModel(),
	}
}
