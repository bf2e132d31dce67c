/* golden_test.go
 * Contains the expected printouts of fully played cups, using the fixed simulator
 */

package logic

// singleWithByeGolden is an 8 team single elimination cup with seed 3 empty
const singleWithByeGolden = "\n" +
	"Team 1                            5                                                                                     \n" +
	"                                        Team 1                            5                                             \n" +
	"Team 2                            0                                                                                     \n" +
	"                                                                                Team 1                            5     \n" +
	"                                                                                                                        \n" +
	"                                        Team 4                            0                                             \n" +
	"                                                                                                                        \n" +
	"                                                                                                                        \n" +
	"Team 5                            5                                                                                     \n" +
	"                                        Team 5                            5                                             \n" +
	"Team 6                            0                                                                                     \n" +
	"                                                                                Team 5                            0     \n" +
	"Team 7                            5                                                                                     \n" +
	"                                        Team 7                            0                                             \n" +
	"Team 8                            0                                                                                     \n"

// doubleGolden is an 8 team double elimination cup, final won at the first attempt
const doubleGolden = "\n" +
	"Team 1                            5                                                                                     \n" +
	"                                        Team 1                            5                                             \n" +
	"Team 2                            0                                                                                     \n" +
	"                                                                                Team 1                            5     \n" +
	"Team 3                            5                                                                                     \n" +
	"                                        Team 3                            0                                             \n" +
	"Team 4                            0                                                                                     \n" +
	"                                                                                                                        \n" +
	"Team 5                            5                                                                                     \n" +
	"                                        Team 5                            5                                             \n" +
	"Team 6                            0                                                                                     \n" +
	"                                                                                Team 5                            0     \n" +
	"Team 7                            5                                                                                     \n" +
	"                                        Team 7                            0                                             \n" +
	"Team 8                            0                                                                                     \n" +
	"\n" +
	"                                                                                                                        Team 5                            5     \n" +
	"                                        Team 7                            5                                                                                     \n" +
	"Team 2                            5                                             Team 7                            5                                             \n" +
	"                                        Team 2                            0                                                                                     \n" +
	"Team 4                            0                                                                                     Team 7                            0     \n" +
	"                                        Team 3                            5                                                                                     \n" +
	"Team 6                            5                                             Team 3                            0                                             \n" +
	"                                        Team 6                            0                                                                                     \n" +
	"Team 8                            0                                                                                                                             \n" +
	"\n" +
	"\n" +
	"Team 1                            5                                                       \n" +
	"                                                                                          \n" +
	"Team 5                            0                                                       \n"

// losersGolden is a 3 round losers bracket fed "Team 1".."Team 7"
const losersGolden = "\n" +
	"                                                                                                                        Team 7                            5     \n" +
	"                                        Team 6                            5                                                                                     \n" +
	"Team 1                            5                                             Team 6                            5                                             \n" +
	"                                        Team 1                            0                                                                                     \n" +
	"Team 2                            0                                                                                     Team 6                            0     \n" +
	"                                        Team 5                            5                                                                                     \n" +
	"Team 3                            5                                             Team 5                            0                                             \n" +
	"                                        Team 3                            0                                                                                     \n" +
	"Team 4                            0                                                                                                                             \n"

// stepladderGolden is an 8 team stepladder
const stepladderGolden = "\n" +
	"                                                                                                                                                                                                                                                Team 8                            5     \n" +
	"                                                                                                                                                                                                        Team 7                            5                                             \n" +
	"                                                                                                                                                                Team 6                            5                                             Team 7                            0     \n" +
	"                                                                                                                        Team 5                            5                                             Team 6                            0                                             \n" +
	"                                                                                Team 4                            5                                             Team 5                            0                                                                                     \n" +
	"                                        Team 3                            5                                             Team 4                            0                                                                                                                             \n" +
	"Team 1                            5                                             Team 3                            0                                                                                                                                                                     \n" +
	"                                        Team 1                            0                                                                                                                                                                                                             \n" +
	"Team 2                            0                                                                                                                                                                                                                                                     \n"
