package cli

// helpTopics maps each command to its help text. The empty key is the
// overview shown for a bare `help`.
var helpTopics = map[string]string{
	"": `
To enter green letters
 > green ...

To enter yellow letters
 > yellow ...

To enter gray letters
 > gray ...

To test a guess
 > test ...

To get suggested guesses
 > clues

To see all possible words
 > words

To play a round against a random word
 > play

To toggle hardmode
 > hardmode

To reset
 > reset

To quit
 > exit

For more information about one of these commands
 > help <command>
`,
	"green": `
Green letters must be entered as part of a 5 character sequence. Use any non-letter character to fill empty spaces.

 > green -r---
This will exclude all words that do not have 'r' as their second letter.
`,
	"yellow": `
Yellow letters must be entered as part of a 5 character sequence. Use any non-letter character to fill empty spaces.

 > yellow a----
This will exclude all words that do not contain the letter 'a', as well as those that have an 'a' as their first letter.
`,
	"gray": `
Gray letters can be entered in any order, as many as you like at a time.

 > gray abc
This will exclude all words that contain 'a', 'b', or 'c'.
`,
	"test": `
Prints your guess, coloring each letter depending on its frequency in the remaining possible words.
More gray letters are less likely to be present.
More yellow letters are likely to be present, but not at that position.
More green letters are likely to be present at that position.
`,
	"clues": `
Shows three suggested guesses.
'More Information' - This guess aims to learn the most about the letters in the remaining possible words.
'More Green Letters' - This guess is intended to get as many green letters as possible.
'Balanced' - This guess takes into account both green letters and information gain.
`,
	"words": `
Shows a list of all remaining possible words.
Add a prefix to narrow the list:
 > words cr
`,
	"play": `
Starts a round against a randomly chosen target word. You have six guesses;
each one is graded in color and the alphabet line tracks what you know.
`,
	"hardmode": `
Toggles hardmode on and off. While in hardmode, all suggested guesses will be possible solutions to the puzzle. By default, hardmode is off.
`,
	"reset": `
Resets the trainer to its initial state.
`,
	"exit": `
Exits wordleologist.
`,
	"help": `
Shows instructions about how to use wordleologist.
`,
}
