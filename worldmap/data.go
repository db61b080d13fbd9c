// Static tables of the synthesized stand-in campaign map; do not hand-edit
// individual tiles without re-checking the keep/citadel coordinates the
// guard roster expects. See DESIGN.md for provenance.
package worldmap

var mainMapTable = [3904]byte{
	10, 10, 10, 10, 10, 10, 10, 10, 7, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 4, 10, 10, 15, 6, 2, 8, 2, 15, 15, 15, 2, 0, 2, 5, 15, 0, 15,
	15, 15, 15, 2, 15, 15, 6, 15, 2, 15, 15, 6, 15, 15, 15, 6, 3, 15, 11, 15,
	3, 15, 6, 15, 11, 15, 2, 2, 0, 2, 79, 2, 15, 11, 2, 15, 6, 3, 15, 15,
	15, 6, 15, 15, 8, 3, 15, 10, 10, 15, 15, 15, 15, 0, 15, 15, 15, 2, 15, 15,
	15, 79, 5, 15, 6, 0, 2, 2, 15, 11, 15, 5, 15, 15, 8, 0, 15, 15, 5, 0,
	15, 15, 2, 0, 3, 15, 15, 13, 0, 15, 5, 2, 15, 15, 11, 5, 15, 2, 6, 8,
	3, 15, 15, 15, 15, 6, 15, 15, 15, 5, 15, 10, 10, 6, 15, 15, 0, 15, 15, 15,
	15, 5, 6, 6, 13, 11, 15, 15, 15, 15, 2, 15, 15, 63, 15, 15, 15, 191, 2, 0,
	5, 15, 15, 15, 13, 15, 0, 13, 15, 15, 6, 15, 2, 5, 15, 15, 2, 15, 7, 5,
	6, 0, 2, 15, 0, 15, 6, 0, 12, 15, 0, 15, 2, 6, 15, 10, 10, 13, 15, 15,
	15, 15, 5, 143, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 4, 15, 7, 3, 15, 2, 6, 15, 3, 15, 15, 2, 11, 2, 12, 15, 3, 15,
	2, 15, 11, 6, 15, 6, 15, 15, 15, 15, 15, 15, 15, 15, 5, 15, 0, 15, 15, 10,
	10, 15, 6, 15, 15, 11, 15, 15, 2, 2, 5, 15, 15, 0, 15, 15, 3, 15, 0, 0,
	6, 12, 7, 15, 5, 15, 15, 6, 2, 2, 15, 12, 15, 6, 15, 6, 15, 3, 2, 15,
	2, 6, 12, 15, 15, 15, 15, 2, 15, 6, 5, 2, 15, 2, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 10, 10, 15, 15, 5, 15, 5, 15, 6, 15, 6, 5, 15, 6, 15, 15, 15,
	15, 15, 6, 2, 5, 6, 15, 15, 5, 15, 15, 13, 6, 15, 11, 15, 7, 5, 2, 15,
	13, 3, 6, 15, 15, 3, 15, 15, 15, 15, 2, 15, 5, 15, 6, 15, 13, 2, 15, 239,
	6, 15, 15, 15, 2, 15, 15, 10, 10, 6, 15, 2, 15, 15, 2, 15, 11, 15, 3, 15,
	15, 5, 15, 11, 0, 12, 15, 15, 6, 2, 15, 7, 15, 3, 15, 15, 5, 1, 15, 15,
	15, 15, 15, 15, 15, 7, 15, 2, 6, 11, 6, 5, 3, 3, 15, 15, 6, 15, 6, 15,
	2, 3, 15, 15, 11, 0, 0, 15, 6, 15, 15, 10, 10, 0, 13, 15, 31, 15, 15, 15,
	6, 15, 6, 0, 2, 0, 15, 2, 2, 2, 6, 15, 15, 0, 15, 12, 15, 15, 15, 6,
	2, 12, 13, 0, 15, 13, 13, 15, 13, 15, 15, 13, 7, 15, 15, 15, 0, 0, 15, 15,
	8, 0, 6, 12, 0, 15, 13, 15, 11, 7, 15, 15, 15, 0, 12, 10, 10, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 3, 15, 15, 15, 2, 15, 15, 5, 15, 15, 0, 15, 11, 2,
	5, 6, 0, 11, 15, 12, 2, 2, 15, 15, 15, 15, 15, 15, 0, 7, 2, 15, 15, 15,
	6, 15, 15, 12, 15, 13, 15, 2, 15, 0, 2, 5, 2, 15, 15, 0, 12, 6, 15, 10,
	10, 3, 15, 2, 15, 0, 5, 15, 2, 15, 0, 7, 95, 0, 3, 6, 15, 15, 79, 15,
	6, 15, 2, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 47, 15, 15, 15, 15, 8,
	15, 15, 2, 6, 5, 15, 0, 2, 15, 6, 0, 0, 15, 15, 15, 6, 15, 15, 5, 15,
	15, 15, 15, 10, 10, 15, 8, 15, 2, 15, 2, 5, 111, 15, 15, 2, 5, 15, 11, 2,
	15, 15, 15, 2, 0, 7, 2, 2, 15, 7, 0, 15, 3, 2, 15, 15, 15, 15, 15, 15,
	2, 3, 15, 15, 15, 15, 15, 15, 6, 5, 0, 6, 2, 15, 12, 15, 15, 15, 15, 2,
	15, 15, 15, 5, 11, 15, 15, 10, 10, 15, 0, 6, 15, 3, 8, 2, 3, 15, 13, 15,
	2, 2, 15, 15, 12, 15, 15, 0, 13, 15, 5, 15, 0, 15, 15, 12, 2, 7, 0, 15,
	3, 13, 15, 15, 7, 0, 15, 2, 0, 6, 15, 3, 15, 2, 15, 15, 15, 15, 15, 7,
	15, 15, 5, 15, 11, 15, 2, 6, 15, 0, 7, 10, 10, 15, 15, 15, 15, 6, 15, 15,
	15, 3, 11, 6, 15, 6, 15, 15, 7, 12, 11, 15, 15, 15, 15, 15, 15, 63, 11, 0,
	5, 15, 15, 15, 6, 15, 0, 15, 8, 15, 15, 6, 15, 6, 2, 13, 0, 0, 15, 6,
	15, 15, 2, 13, 15, 15, 2, 7, 15, 11, 15, 13, 15, 15, 15, 10, 10, 15, 15, 15,
	15, 15, 3, 6, 15, 127, 5, 11, 15, 15, 15, 15, 2, 15, 2, 15, 6, 3, 0, 0,
	11, 0, 15, 0, 15, 2, 5, 0, 15, 15, 15, 6, 15, 0, 11, 15, 3, 15, 15, 0,
	2, 15, 15, 15, 2, 15, 5, 13, 15, 0, 15, 15, 11, 0, 15, 15, 15, 5, 2, 10,
	10, 2, 0, 15, 15, 13, 15, 15, 15, 15, 2, 15, 0, 15, 15, 15, 15, 6, 5, 15,
	15, 15, 11, 15, 5, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 5,
	15, 15, 15, 15, 15, 6, 15, 15, 15, 15, 5, 15, 15, 3, 127, 15, 5, 7, 15, 15,
	15, 15, 2, 10, 10, 15, 15, 3, 6, 15, 15, 15, 12, 5, 15, 6, 15, 15, 7, 2,
	2, 15, 0, 15, 3, 15, 15, 6, 15, 12, 15, 7, 15, 15, 15, 12, 5, 15, 7, 15,
	2, 2, 15, 13, 15, 11, 7, 15, 15, 15, 15, 5, 0, 15, 0, 15, 7, 2, 11, 15,
	15, 15, 15, 15, 15, 3, 15, 10, 10, 15, 6, 15, 15, 6, 15, 11, 2, 9, 0, 5,
	15, 15, 2, 0, 15, 15, 2, 7, 15, 15, 15, 15, 13, 12, 15, 15, 15, 15, 2, 2,
	0, 0, 15, 15, 6, 15, 3, 11, 15, 15, 0, 12, 2, 13, 2, 15, 15, 15, 5, 0,
	15, 15, 15, 0, 3, 95, 15, 15, 15, 0, 15, 10, 10, 2, 11, 6, 6, 13, 15, 15,
	2, 0, 15, 5, 15, 15, 6, 5, 13, 15, 11, 0, 15, 15, 7, 15, 0, 2, 15, 15,
	15, 0, 15, 15, 5, 15, 15, 5, 2, 15, 15, 8, 15, 15, 15, 15, 15, 2, 15, 15,
	15, 11, 15, 11, 11, 15, 7, 6, 15, 15, 6, 3, 15, 6, 15, 10, 10, 3, 15, 0,
	15, 0, 15, 0, 15, 15, 2, 2, 11, 15, 15, 15, 15, 5, 15, 15, 15, 6, 5, 15,
	2, 6, 3, 15, 11, 2, 12, 15, 15, 0, 2, 15, 3, 15, 6, 3, 15, 15, 15, 15,
	13, 6, 15, 15, 6, 15, 2, 15, 0, 15, 2, 15, 6, 3, 15, 15, 15, 15, 6, 10,
	10, 15, 15, 11, 15, 0, 2, 15, 15, 2, 15, 6, 8, 2, 7, 0, 15, 15, 5, 15,
	15, 15, 15, 11, 15, 15, 0, 15, 15, 15, 15, 15, 15, 6, 15, 15, 2, 6, 11, 15,
	15, 2, 2, 0, 15, 8, 15, 15, 6, 7, 2, 5, 3, 2, 15, 15, 0, 7, 2, 0,
	15, 15, 3, 10, 10, 15, 2, 15, 15, 15, 6, 31, 2, 3, 3, 15, 11, 2, 15, 15,
	15, 6, 7, 15, 13, 15, 8, 0, 8, 13, 6, 15, 15, 15, 2, 15, 15, 3, 15, 2,
	15, 15, 11, 15, 2, 15, 7, 13, 15, 0, 2, 5, 2, 2, 111, 2, 15, 15, 15, 15,
	15, 15, 5, 6, 15, 15, 5, 10, 10, 12, 15, 15, 3, 0, 6, 5, 15, 15, 15, 5,
	15, 15, 2, 5, 11, 2, 13, 15, 15, 15, 15, 15, 15, 15, 6, 0, 15, 15, 13, 7,
	15, 15, 15, 11, 5, 15, 2, 2, 15, 15, 6, 2, 11, 15, 7, 12, 6, 15, 15, 5,
	6, 2, 5, 5, 15, 15, 3, 15, 15, 0, 15, 10, 10, 15, 15, 15, 12, 5, 11, 2,
	15, 2, 15, 15, 15, 15, 0, 6, 15, 2, 12, 2, 15, 13, 15, 2, 15, 15, 15, 15,
	6, 15, 15, 15, 2, 6, 0, 2, 6, 6, 11, 7, 15, 2, 6, 15, 6, 5, 15, 15,
	6, 5, 15, 15, 11, 15, 15, 15, 5, 0, 15, 15, 15, 15, 6, 10, 10, 15, 6, 0,
	8, 3, 2, 15, 6, 15, 15, 15, 15, 2, 0, 15, 2, 12, 6, 15, 0, 15, 15, 2,
	13, 15, 15, 2, 15, 15, 15, 15, 6, 15, 15, 15, 15, 15, 2, 0, 6, 15, 2, 15,
	2, 15, 15, 15, 3, 3, 12, 13, 12, 15, 6, 15, 7, 15, 11, 12, 2, 15, 15, 10,
	10, 15, 15, 2, 47, 15, 2, 0, 15, 6, 2, 2, 15, 2, 15, 15, 11, 15, 0, 0,
	3, 15, 15, 15, 2, 15, 0, 2, 2, 3, 15, 15, 7, 3, 0, 15, 15, 15, 15, 15,
	2, 0, 2, 15, 0, 6, 5, 15, 15, 15, 6, 15, 2, 0, 15, 15, 15, 0, 15, 3,
	3, 15, 15, 10, 10, 15, 15, 13, 15, 2, 15, 0, 15, 6, 15, 15, 15, 15, 12, 6,
	12, 11, 13, 0, 15, 0, 15, 15, 2, 0, 5, 2, 5, 6, 15, 5, 15, 11, 15, 15,
	12, 2, 15, 15, 15, 15, 15, 13, 2, 7, 0, 15, 11, 15, 5, 5, 2, 15, 7, 2,
	15, 15, 15, 15, 12, 15, 15, 10, 10, 6, 0, 13, 5, 0, 15, 15, 12, 15, 15, 15,
	11, 15, 15, 15, 2, 2, 15, 0, 15, 15, 5, 15, 5, 2, 2, 15, 15, 3, 5, 0,
	2, 0, 7, 15, 15, 0, 15, 15, 2, 143, 5, 0, 15, 15, 15, 15, 5, 0, 15, 3,
	11, 15, 15, 15, 15, 0, 15, 15, 15, 2, 2, 10, 10, 15, 2, 15, 15, 15, 5, 11,
	15, 2, 15, 15, 3, 15, 15, 11, 15, 7, 13, 6, 6, 15, 8, 15, 0, 15, 15, 12,
	15, 15, 0, 5, 15, 6, 15, 15, 15, 12, 0, 15, 0, 0, 7, 15, 15, 15, 15, 15,
	5, 15, 13, 31, 15, 15, 15, 5, 15, 15, 15, 2, 15, 2, 15, 10, 10, 5, 2, 15,
	0, 0, 15, 15, 6, 15, 6, 2, 15, 5, 2, 15, 15, 2, 15, 15, 15, 15, 95, 2,
	7, 15, 2, 15, 15, 15, 7, 15, 15, 15, 2, 15, 15, 15, 2, 12, 5, 0, 2, 3,
	15, 6, 0, 15, 3, 5, 6, 7, 15, 3, 15, 15, 15, 7, 15, 15, 15, 15, 15, 10,
	10, 5, 15, 0, 11, 15, 2, 2, 15, 12, 15, 15, 15, 2, 15, 15, 6, 5, 2, 11,
	15, 15, 5, 15, 15, 2, 15, 15, 0, 15, 12, 2, 6, 5, 0, 3, 6, 15, 15, 15,
	15, 3, 3, 8, 15, 15, 15, 6, 15, 0, 6, 2, 15, 13, 15, 6, 2, 15, 15, 5,
	15, 15, 15, 10, 10, 15, 2, 15, 15, 15, 11, 15, 15, 15, 0, 15, 5, 0, 6, 15,
	2, 2, 6, 0, 15, 15, 2, 15, 2, 3, 0, 15, 2, 2, 2, 15, 2, 11, 13, 15,
	2, 15, 6, 15, 15, 11, 15, 15, 6, 15, 6, 8, 5, 2, 0, 15, 15, 15, 15, 7,
	15, 15, 15, 5, 15, 15, 6, 10, 10, 15, 15, 15, 15, 15, 13, 15, 2, 15, 2, 15,
	15, 15, 11, 15, 15, 15, 0, 11, 6, 7, 15, 7, 15, 15, 15, 15, 0, 0, 111, 3,
	0, 15, 3, 15, 2, 15, 12, 15, 15, 5, 15, 7, 15, 15, 15, 15, 0, 15, 15, 6,
	2, 0, 15, 6, 15, 15, 15, 0, 15, 15, 15, 10, 10, 15, 3, 15, 15, 2, 11, 15,
	15, 0, 15, 6, 15, 7, 15, 15, 3, 0, 5, 6, 2, 0, 15, 15, 15, 15, 0, 15,
	5, 15, 15, 2, 15, 0, 7, 159, 15, 11, 15, 15, 12, 2, 15, 2, 8, 15, 15, 3,
	15, 12, 15, 15, 15, 15, 3, 0, 15, 15, 15, 6, 15, 15, 15, 10, 10, 15, 2, 2,
	6, 3, 15, 15, 12, 0, 15, 13, 2, 15, 15, 11, 15, 15, 15, 15, 6, 15, 15, 15,
	15, 5, 15, 5, 0, 15, 7, 15, 31, 15, 5, 3, 0, 0, 15, 15, 8, 2, 6, 2,
	2, 2, 2, 2, 11, 15, 15, 3, 15, 15, 15, 12, 15, 15, 0, 7, 15, 2, 2, 10,
	10, 15, 15, 5, 15, 15, 6, 15, 15, 15, 0, 15, 15, 2, 15, 6, 6, 15, 0, 0,
	6, 2, 5, 6, 15, 0, 2, 15, 6, 8, 15, 15, 3, 15, 2, 15, 15, 13, 15, 15,
	15, 15, 2, 15, 13, 6, 2, 15, 15, 11, 2, 15, 15, 15, 15, 5, 15, 3, 6, 2,
	6, 2, 8, 10, 10, 15, 2, 15, 15, 15, 15, 15, 15, 15, 0, 15, 15, 6, 15, 11,
	15, 15, 15, 15, 2, 7, 15, 0, 15, 15, 15, 0, 15, 15, 15, 5, 15, 2, 2, 6,
	0, 0, 15, 6, 0, 2, 15, 15, 15, 0, 15, 5, 15, 15, 2, 15, 8, 0, 5, 15,
	6, 15, 15, 15, 15, 5, 0, 10, 10, 15, 3, 0, 5, 3, 6, 15, 15, 12, 11, 15,
	15, 2, 6, 5, 15, 11, 5, 3, 15, 11, 15, 2, 31, 15, 15, 15, 15, 15, 6, 15,
	15, 6, 15, 15, 11, 6, 15, 3, 13, 6, 6, 5, 5, 15, 15, 0, 15, 6, 15, 2,
	2, 0, 6, 2, 15, 15, 6, 15, 5, 2, 2, 10, 10, 15, 11, 15, 15, 6, 15, 15,
	13, 15, 2, 6, 2, 6, 2, 2, 3, 0, 15, 15, 15, 2, 15, 15, 15, 0, 3, 0,
	15, 2, 15, 15, 15, 15, 12, 15, 3, 6, 15, 15, 5, 15, 15, 15, 15, 2, 2, 15,
	15, 15, 2, 3, 6, 2, 7, 0, 5, 15, 6, 2, 15, 2, 15, 10, 10, 12, 15, 2,
	11, 13, 15, 8, 15, 15, 6, 15, 2, 15, 15, 15, 15, 15, 15, 3, 15, 5, 2, 15,
	0, 15, 5, 7, 2, 12, 15, 0, 15, 15, 2, 15, 6, 15, 15, 3, 5, 2, 2, 15,
	15, 2, 15, 15, 11, 2, 15, 15, 3, 6, 15, 15, 2, 15, 2, 15, 6, 223, 6, 10,
	10, 15, 15, 15, 0, 0, 15, 0, 15, 15, 5, 15, 15, 0, 15, 0, 11, 5, 15, 15,
	3, 15, 7, 15, 15, 7, 15, 15, 12, 15, 15, 15, 15, 15, 2, 0, 15, 15, 15, 12,
	15, 8, 15, 2, 15, 15, 95, 15, 7, 11, 15, 15, 15, 0, 15, 2, 15, 2, 15, 15,
	2, 15, 0, 10, 10, 15, 0, 15, 6, 15, 15, 6, 0, 15, 15, 2, 6, 15, 15, 15,
	8, 6, 15, 15, 15, 15, 15, 15, 12, 15, 6, 15, 11, 0, 6, 15, 5, 15, 15, 15,
	15, 15, 6, 15, 5, 15, 7, 0, 6, 15, 15, 6, 6, 15, 2, 5, 15, 15, 8, 7,
	15, 11, 15, 5, 15, 3, 15, 10, 10, 0, 15, 15, 15, 15, 15, 15, 15, 15, 5, 6,
	3, 0, 15, 15, 15, 7, 15, 15, 3, 3, 15, 15, 6, 15, 5, 15, 7, 11, 15, 11,
	3, 6, 15, 13, 3, 2, 0, 2, 15, 12, 0, 15, 0, 15, 15, 15, 3, 6, 15, 15,
	5, 15, 15, 15, 15, 3, 15, 15, 15, 0, 5, 10, 10, 15, 0, 15, 5, 15, 15, 15,
	15, 15, 15, 15, 15, 12, 15, 6, 6, 15, 15, 15, 6, 15, 6, 6, 15, 15, 15, 11,
	6, 2, 15, 15, 15, 15, 15, 15, 15, 7, 15, 2, 12, 6, 2, 3, 15, 15, 15, 15,
	15, 15, 15, 13, 15, 15, 15, 15, 15, 15, 15, 7, 0, 15, 15, 10, 10, 15, 5, 15,
	2, 5, 3, 15, 2, 15, 15, 12, 2, 6, 15, 5, 6, 0, 15, 5, 15, 15, 12, 13,
	0, 15, 6, 15, 15, 15, 3, 6, 15, 15, 15, 6, 15, 15, 0, 15, 15, 15, 5, 15,
	15, 15, 15, 15, 5, 15, 15, 0, 2, 2, 0, 5, 15, 15, 15, 6, 11, 15, 2, 10,
	10, 15, 15, 5, 15, 2, 12, 15, 2, 15, 11, 15, 8, 15, 2, 5, 15, 8, 15, 2,
	15, 15, 2, 15, 15, 15, 5, 15, 15, 15, 0, 15, 15, 15, 15, 13, 15, 15, 0, 15,
	15, 2, 15, 13, 7, 15, 15, 15, 3, 15, 2, 15, 15, 13, 15, 6, 2, 159, 175, 5,
	0, 15, 15, 10, 10, 15, 0, 15, 15, 13, 11, 6, 15, 15, 0, 2, 15, 15, 15, 2,
	15, 15, 2, 15, 0, 6, 15, 15, 6, 15, 6, 15, 0, 7, 5, 3, 8, 15, 2, 2,
	15, 15, 15, 2, 6, 15, 7, 15, 15, 15, 12, 0, 15, 8, 15, 15, 15, 15, 15, 2,
	0, 15, 15, 15, 0, 13, 15, 10, 10, 15, 3, 2, 0, 15, 15, 7, 15, 15, 7, 6,
	15, 0, 6, 15, 15, 15, 5, 15, 6, 15, 2, 127, 15, 6, 15, 8, 3, 2, 15, 6,
	11, 15, 15, 15, 15, 15, 15, 15, 0, 15, 15, 15, 0, 3, 2, 15, 15, 15, 2, 15,
	3, 15, 12, 0, 15, 15, 15, 15, 6, 15, 15, 10, 10, 15, 15, 15, 11, 15, 15, 15,
	15, 15, 15, 15, 0, 15, 15, 0, 2, 15, 6, 15, 12, 15, 6, 11, 2, 15, 15, 15,
	15, 15, 15, 15, 13, 15, 15, 13, 0, 15, 15, 5, 6, 2, 2, 15, 2, 15, 5, 15,
	7, 15, 6, 13, 15, 0, 15, 15, 2, 11, 5, 15, 15, 15, 0, 10, 10, 15, 15, 2,
	6, 2, 2, 3, 15, 3, 2, 15, 15, 11, 15, 15, 15, 15, 5, 11, 15, 7, 15, 5,
	15, 6, 15, 15, 5, 6, 12, 15, 15, 6, 11, 2, 15, 15, 0, 15, 0, 15, 15, 3,
	15, 7, 13, 15, 15, 15, 12, 0, 11, 0, 0, 15, 6, 15, 2, 15, 15, 6, 15, 10,
	10, 5, 6, 2, 15, 15, 6, 2, 6, 15, 2, 15, 15, 15, 8, 15, 6, 15, 13, 0,
	5, 3, 15, 15, 15, 15, 6, 15, 15, 2, 15, 15, 0, 8, 15, 12, 6, 15, 15, 15,
	0, 2, 2, 15, 15, 15, 15, 15, 15, 2, 6, 11, 5, 15, 7, 15, 15, 15, 15, 15,
	15, 5, 2, 10, 10, 3, 15, 6, 15, 15, 15, 15, 0, 0, 5, 15, 15, 15, 6, 15,
	15, 15, 15, 5, 15, 2, 15, 15, 2, 15, 11, 15, 2, 15, 15, 15, 15, 12, 15, 15,
	6, 15, 15, 7, 15, 6, 7, 15, 0, 15, 15, 15, 15, 15, 7, 5, 15, 5, 5, 15,
	15, 3, 15, 6, 15, 6, 8, 10, 10, 3, 15, 15, 6, 15, 6, 5, 15, 6, 0, 15,
	2, 15, 2, 15, 2, 15, 15, 2, 15, 2, 15, 15, 15, 6, 2, 15, 15, 15, 6, 5,
	0, 15, 15, 15, 15, 6, 15, 5, 0, 2, 12, 0, 0, 207, 7, 15, 15, 3, 11, 15,
	15, 15, 13, 15, 8, 6, 15, 15, 15, 15, 6, 10, 10, 11, 15, 5, 0, 15, 2, 6,
	15, 13, 15, 13, 15, 15, 15, 3, 15, 0, 15, 6, 6, 15, 15, 5, 15, 5, 11, 5,
	13, 15, 11, 15, 15, 13, 15, 6, 15, 15, 15, 15, 15, 15, 15, 15, 15, 2, 6, 2,
	15, 15, 13, 8, 15, 15, 5, 15, 15, 11, 2, 8, 2, 2, 15, 10, 10, 15, 6, 15,
	6, 11, 15, 6, 0, 15, 15, 15, 7, 11, 6, 15, 15, 0, 15, 6, 15, 15, 2, 2,
	13, 7, 8, 3, 11, 15, 15, 6, 15, 3, 2, 15, 5, 0, 15, 2, 5, 15, 5, 15,
	7, 2, 6, 15, 13, 15, 12, 6, 15, 2, 13, 7, 6, 15, 0, 15, 2, 15, 15, 10,
	10, 15, 63, 5, 13, 15, 5, 7, 6, 2, 7, 15, 15, 6, 12, 2, 15, 15, 15, 2,
	11, 15, 15, 15, 15, 15, 15, 0, 6, 15, 15, 2, 15, 2, 15, 15, 5, 15, 15, 5,
	15, 2, 0, 15, 15, 5, 0, 2, 15, 2, 2, 0, 15, 8, 15, 31, 15, 15, 2, 2,
	15, 15, 3, 10, 10, 2, 13, 12, 3, 2, 15, 15, 2, 2, 0, 2, 15, 0, 11, 15,
	15, 7, 6, 2, 0, 7, 15, 0, 0, 15, 15, 0, 15, 12, 15, 15, 15, 15, 5, 0,
	15, 7, 12, 15, 6, 2, 15, 15, 15, 15, 15, 6, 15, 5, 15, 15, 8, 15, 0, 15,
	15, 2, 0, 15, 15, 0, 15, 10, 10, 15, 2, 0, 2, 8, 15, 15, 7, 8, 15, 2,
	7, 15, 6, 15, 15, 15, 6, 0, 15, 5, 15, 6, 15, 15, 2, 15, 6, 15, 0, 15,
	15, 15, 111, 0, 15, 6, 15, 0, 15, 15, 15, 15, 6, 15, 15, 15, 12, 15, 2, 2,
	15, 12, 15, 15, 15, 15, 6, 5, 0, 2, 15, 10, 10, 15, 15, 5, 15, 15, 6, 5,
	6, 12, 2, 15, 15, 15, 15, 2, 5, 15, 2, 15, 15, 11, 15, 0, 15, 15, 2, 15,
	15, 0, 15, 2, 6, 0, 15, 15, 15, 15, 15, 7, 15, 0, 15, 6, 5, 15, 15, 2,
	5, 5, 15, 0, 15, 2, 15, 15, 7, 15, 15, 11, 13, 11, 15, 7, 10, 15, 15, 0,
	15, 15, 15, 15, 6, 15, 15, 2, 15, 15, 2, 15, 5, 15, 15, 12, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 6, 5, 15, 2, 15, 5, 13, 15, 8, 15, 15, 15, 15, 7, 15,
	5, 1, 2, 15, 15, 2, 12, 2, 15, 15, 2, 6, 15, 3, 15, 0, 15, 15, 2, 10,
	10, 10, 10, 10, 7, 10, 10, 10, 10, 10, 10, 10, 10, 10, 7, 10, 10, 10, 10, 10,
	10, 10, 10, 7, 10, 10, 10, 10, 10, 10, 10, 10, 10, 7, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 7,
	10, 10, 10, 10,
}

var referenceTable = [3904]byte{
	59, 16, 37, 16, 23, 21, 20, 49, 46, 3, 48, 28, 21, 30, 28, 40, 14, 18, 50, 30,
	1, 9, 35, 44, 0, 25, 32, 63, 40, 30, 35, 55, 7, 7, 58, 33, 5, 7, 10, 7,
	60, 38, 1, 53, 41, 48, 42, 59, 37, 31, 41, 31, 52, 30, 7, 41, 60, 57, 2, 57,
	43, 45, 33, 12, 8, 34, 53, 46, 1, 17, 55, 51, 62, 4, 16, 48, 50, 53, 38, 9,
	50, 56, 22, 2, 57, 17, 55, 39, 31, 1, 9, 23, 25, 21, 5, 22, 50, 38, 46, 28,
	27, 52, 20, 46, 39, 58, 23, 30, 38, 24, 29, 23, 24, 30, 42, 32, 1, 45, 60, 51,
	54, 38, 31, 61, 4, 46, 34, 35, 15, 10, 26, 17, 10, 14, 36, 34, 38, 27, 10, 17,
	6, 26, 48, 22, 17, 25, 4, 19, 1, 39, 26, 35, 61, 9, 22, 10, 52, 3, 20, 4,
	15, 25, 26, 7, 26, 39, 7, 7, 50, 51, 63, 40, 44, 39, 17, 15, 6, 29, 49, 54,
	49, 10, 19, 8, 52, 0, 34, 19, 7, 13, 30, 13, 11, 2, 21, 55, 42, 28, 6, 33,
	48, 4, 45, 22, 62, 22, 7, 61, 37, 28, 5, 55, 0, 2, 30, 16, 56, 42, 55, 44,
	61, 45, 6, 20, 39, 21, 38, 24, 17, 28, 31, 25, 10, 11, 0, 33, 6, 36, 13, 42,
	45, 43, 13, 51, 58, 31, 32, 0, 49, 19, 16, 56, 10, 50, 62, 20, 57, 57, 47, 27,
	23, 45, 13, 24, 40, 56, 63, 62, 30, 59, 62, 60, 42, 49, 11, 61, 17, 35, 16, 4,
	55, 33, 13, 14, 1, 37, 5, 32, 62, 6, 43, 36, 33, 1, 16, 33, 6, 39, 29, 58,
	60, 5, 43, 52, 50, 35, 48, 7, 52, 22, 44, 14, 33, 48, 34, 0, 54, 14, 24, 47,
	42, 20, 56, 54, 5, 43, 0, 59, 63, 52, 19, 32, 3, 2, 48, 59, 49, 55, 9, 53,
	62, 47, 9, 15, 17, 19, 21, 9, 15, 31, 3, 14, 2, 10, 25, 50, 34, 56, 62, 46,
	18, 55, 8, 2, 48, 44, 51, 18, 0, 37, 1, 31, 51, 25, 38, 21, 49, 53, 17, 20,
	16, 28, 26, 36, 27, 16, 39, 50, 2, 4, 10, 38, 17, 2, 58, 36, 31, 14, 4, 11,
	32, 55, 15, 22, 8, 57, 45, 57, 30, 61, 36, 22, 10, 15, 48, 4, 49, 53, 62, 16,
	36, 36, 59, 7, 32, 53, 4, 53, 37, 22, 32, 41, 16, 33, 10, 60, 52, 60, 20, 29,
	16, 58, 24, 39, 22, 53, 27, 18, 58, 34, 30, 24, 18, 8, 3, 8, 61, 62, 49, 25,
	48, 7, 46, 51, 38, 25, 40, 3, 38, 59, 1, 63, 7, 16, 59, 11, 52, 15, 53, 41,
	33, 33, 46, 52, 43, 37, 52, 28, 26, 56, 56, 52, 10, 38, 14, 27, 53, 22, 12, 46,
	2, 19, 48, 43, 56, 20, 57, 54, 5, 42, 3, 22, 26, 22, 6, 62, 14, 39, 16, 5,
	14, 2, 44, 18, 34, 11, 43, 43, 7, 23, 39, 35, 3, 45, 21, 4, 2, 56, 1, 13,
	17, 61, 50, 62, 31, 35, 44, 7, 47, 19, 63, 12, 49, 58, 46, 14, 51, 23, 53, 31,
	62, 60, 57, 37, 35, 37, 8, 47, 62, 46, 51, 7, 44, 39, 0, 13, 20, 13, 9, 21,
	24, 23, 56, 21, 56, 42, 13, 22, 46, 54, 46, 0, 52, 62, 16, 24, 26, 31, 49, 7,
	49, 31, 42, 24, 10, 60, 37, 33, 12, 22, 17, 54, 47, 53, 26, 43, 21, 13, 52, 5,
	2, 33, 55, 4, 18, 46, 49, 17, 29, 44, 27, 57, 62, 5, 21, 58, 39, 44, 31, 35,
	10, 30, 5, 48, 23, 20, 26, 3, 54, 35, 57, 61, 53, 39, 35, 63, 52, 59, 37, 58,
	4, 42, 44, 16, 37, 56, 34, 27, 12, 8, 25, 10, 15, 44, 52, 47, 13, 18, 11, 31,
	51, 46, 43, 43, 61, 13, 54, 9, 44, 46, 47, 11, 6, 58, 59, 37, 5, 62, 56, 11,
	52, 39, 13, 30, 20, 63, 18, 40, 14, 59, 11, 23, 63, 21, 33, 26, 43, 31, 36, 17,
	31, 13, 57, 25, 42, 9, 51, 49, 24, 15, 52, 8, 47, 40, 24, 1, 16, 13, 60, 16,
	56, 36, 26, 47, 7, 24, 35, 45, 41, 59, 1, 7, 27, 32, 24, 8, 51, 21, 15, 2,
	39, 51, 39, 52, 39, 27, 38, 60, 41, 48, 45, 38, 29, 48, 57, 20, 41, 24, 63, 52,
	60, 46, 53, 50, 23, 14, 44, 45, 33, 11, 13, 6, 13, 57, 6, 21, 56, 56, 47, 58,
	54, 53, 1, 53, 24, 15, 46, 58, 21, 38, 47, 12, 7, 21, 57, 51, 39, 60, 42, 62,
	53, 9, 55, 42, 23, 39, 20, 10, 30, 38, 1, 59, 16, 32, 50, 56, 3, 22, 58, 57,
	50, 46, 51, 62, 48, 44, 37, 44, 46, 54, 45, 58, 16, 35, 29, 47, 26, 38, 55, 40,
	54, 32, 33, 26, 18, 27, 48, 56, 16, 7, 6, 13, 6, 57, 16, 56, 46, 27, 14, 17,
	5, 56, 23, 19, 28, 17, 55, 52, 43, 38, 24, 7, 28, 42, 60, 37, 42, 14, 39, 2,
	41, 19, 44, 46, 29, 27, 54, 4, 3, 28, 42, 48, 4, 20, 50, 59, 34, 55, 9, 49,
	51, 3, 28, 60, 54, 54, 34, 32, 51, 58, 28, 18, 52, 15, 17, 46, 55, 62, 12, 21,
	2, 55, 52, 26, 8, 37, 60, 7, 18, 31, 41, 32, 37, 8, 52, 47, 40, 36, 53, 50,
	47, 0, 40, 43, 33, 15, 4, 49, 57, 28, 37, 45, 53, 59, 19, 38, 48, 60, 36, 7,
	8, 37, 7, 19, 20, 7, 13, 25, 36, 35, 61, 10, 15, 1, 46, 5, 43, 38, 41, 63,
	52, 55, 33, 14, 57, 57, 34, 62, 34, 51, 28, 55, 54, 32, 55, 1, 45, 10, 31, 38,
	20, 23, 8, 28, 50, 56, 22, 33, 53, 34, 13, 24, 30, 62, 45, 48, 37, 17, 20, 59,
	31, 2, 21, 38, 50, 6, 1, 46, 28, 39, 7, 61, 29, 36, 45, 51, 24, 22, 32, 54,
	63, 41, 37, 50, 21, 3, 43, 31, 0, 3, 50, 14, 58, 3, 39, 46, 45, 27, 19, 25,
	51, 8, 50, 18, 12, 17, 4, 4, 11, 35, 32, 42, 43, 42, 12, 10, 24, 4, 7, 17,
	54, 6, 63, 20, 1, 18, 48, 0, 55, 4, 59, 34, 11, 10, 60, 53, 12, 61, 3, 59,
	16, 61, 19, 26, 63, 21, 41, 46, 21, 13, 62, 59, 23, 22, 61, 49, 20, 15, 35, 22,
	62, 60, 39, 18, 28, 47, 8, 20, 33, 61, 12, 60, 49, 22, 56, 42, 53, 19, 6, 1,
	32, 7, 19, 21, 3, 25, 50, 41, 35, 48, 62, 59, 13, 15, 43, 35, 56, 8, 0, 31,
	16, 54, 27, 32, 16, 0, 52, 60, 8, 14, 30, 36, 38, 18, 0, 47, 52, 35, 38, 25,
	13, 19, 36, 21, 22, 7, 2, 37, 48, 24, 29, 61, 10, 14, 36, 20, 3, 44, 43, 0,
	8, 43, 22, 18, 58, 40, 13, 11, 40, 10, 51, 16, 11, 63, 53, 10, 19, 37, 15, 30,
	13, 31, 10, 13, 19, 62, 15, 59, 44, 46, 16, 6, 61, 62, 52, 19, 55, 19, 24, 44,
	13, 22, 25, 17, 34, 8, 43, 54, 9, 14, 62, 41, 32, 35, 29, 4, 28, 24, 40, 50,
	6, 54, 14, 31, 56, 29, 48, 35, 33, 11, 18, 60, 23, 28, 11, 18, 45, 6, 22, 35,
	61, 63, 7, 4, 56, 29, 59, 61, 47, 27, 44, 10, 53, 9, 58, 0, 35, 62, 33, 30,
	44, 15, 59, 50, 62, 18, 39, 40, 45, 53, 48, 5, 31, 61, 47, 30, 56, 22, 20, 59,
	12, 49, 36, 10, 20, 38, 57, 49, 22, 2, 50, 21, 36, 9, 40, 30, 30, 62, 25, 4,
	44, 55, 60, 23, 24, 19, 7, 24, 13, 24, 31, 26, 46, 23, 11, 63, 61, 24, 7, 46,
	22, 36, 56, 34, 42, 48, 9, 7, 23, 52, 55, 58, 5, 29, 50, 28, 25, 10, 56, 12,
	28, 3, 36, 12, 39, 35, 54, 14, 43, 7, 26, 26, 7, 61, 39, 55, 21, 4, 59, 38,
	18, 4, 11, 9, 14, 22, 16, 37, 41, 37, 22, 18, 17, 45, 52, 44, 33, 27, 48, 31,
	19, 58, 20, 15, 44, 2, 52, 36, 33, 16, 17, 9, 35, 53, 38, 43, 44, 30, 49, 55,
	11, 58, 21, 12, 27, 37, 2, 57, 14, 48, 55, 29, 13, 13, 1, 33, 30, 39, 54, 32,
	23, 58, 52, 35, 19, 25, 5, 14, 62, 7, 51, 29, 6, 28, 60, 50, 8, 56, 52, 63,
	8, 24, 12, 28, 41, 36, 29, 22, 52, 59, 41, 5, 21, 60, 44, 12, 41, 23, 25, 44,
	8, 52, 8, 25, 58, 12, 7, 31, 2, 46, 2, 62, 51, 14, 20, 16, 1, 56, 32, 18,
	54, 61, 54, 23, 46, 45, 27, 50, 30, 48, 28, 6, 50, 44, 52, 9, 45, 12, 57, 50,
	32, 28, 34, 57, 41, 58, 40, 30, 47, 52, 25, 46, 7, 15, 60, 52, 19, 15, 51, 38,
	45, 48, 37, 23, 55, 19, 18, 6, 10, 45, 23, 42, 63, 2, 55, 41, 0, 12, 53, 60,
	11, 47, 5, 53, 17, 63, 33, 31, 0, 16, 29, 60, 48, 53, 46, 31, 17, 31, 13, 10,
	49, 19, 48, 22, 37, 16, 39, 7, 33, 24, 0, 15, 3, 7, 54, 12, 39, 61, 49, 37,
	49, 12, 16, 35, 25, 34, 2, 62, 13, 42, 26, 9, 15, 34, 7, 29, 63, 1, 33, 7,
	38, 1, 11, 28, 4, 50, 2, 5, 7, 31, 55, 16, 57, 4, 62, 37, 18, 38, 4, 2,
	26, 32, 11, 20, 54, 25, 43, 12, 27, 61, 56, 63, 37, 63, 55, 40, 21, 7, 3, 10,
	18, 34, 3, 7, 54, 55, 26, 52, 28, 7, 57, 41, 14, 46, 12, 58, 19, 5, 50, 62,
	56, 11, 46, 52, 40, 60, 2, 13, 44, 46, 5, 46, 54, 17, 42, 21, 7, 50, 25, 58,
	57, 59, 46, 62, 29, 40, 53, 45, 57, 32, 8, 17, 11, 47, 10, 29, 2, 7, 62, 23,
	29, 17, 46, 51, 7, 29, 45, 13, 45, 12, 9, 57, 24, 21, 5, 48, 9, 26, 10, 55,
	13, 44, 8, 23, 61, 57, 46, 9, 15, 8, 29, 19, 28, 51, 16, 38, 6, 32, 0, 60,
	32, 53, 43, 44, 19, 45, 39, 50, 60, 35, 60, 56, 2, 5, 28, 61, 49, 40, 45, 44,
	62, 11, 20, 43, 8, 19, 63, 25, 37, 43, 31, 16, 39, 13, 25, 21, 8, 55, 1, 48,
	16, 4, 45, 38, 23, 46, 61, 54, 49, 4, 42, 56, 43, 0, 30, 15, 61, 23, 14, 2,
	5, 51, 58, 23, 15, 6, 6, 13, 31, 15, 41, 57, 26, 39, 17, 23, 53, 11, 22, 53,
	14, 18, 31, 9, 17, 12, 24, 52, 51, 6, 12, 36, 40, 34, 52, 2, 56, 54, 26, 2,
	42, 11, 24, 6, 16, 56, 11, 38, 19, 31, 17, 2, 12, 41, 31, 22, 43, 62, 60, 38,
	14, 15, 27, 21, 27, 56, 0, 60, 8, 51, 49, 42, 1, 60, 49, 14, 60, 18, 4, 54,
	52, 15, 32, 39, 59, 14, 46, 58, 61, 33, 43, 22, 47, 7, 16, 54, 53, 11, 15, 17,
	31, 56, 22, 25, 20, 31, 15, 55, 60, 12, 28, 54, 48, 48, 31, 22, 30, 53, 19, 45,
	18, 27, 4, 58, 0, 32, 8, 48, 46, 12, 35, 37, 13, 57, 47, 54, 26, 15, 32, 42,
	61, 48, 15, 24, 54, 6, 12, 28, 46, 17, 14, 16, 32, 30, 49, 59, 18, 4, 61, 39,
	62, 34, 18, 7, 16, 62, 19, 20, 47, 21, 17, 13, 43, 39, 59, 48, 14, 57, 50, 48,
	42, 36, 27, 35, 13, 5, 34, 9, 27, 47, 45, 43, 43, 63, 8, 9, 22, 47, 3, 19,
	2, 50, 49, 6, 56, 41, 36, 41, 43, 41, 39, 25, 44, 10, 30, 12, 27, 12, 9, 17,
	15, 49, 4, 5, 15, 36, 4, 38, 44, 12, 50, 46, 39, 11, 31, 49, 22, 36, 59, 47,
	31, 2, 49, 53, 61, 25, 40, 53, 10, 51, 20, 1, 51, 15, 7, 32, 29, 44, 26, 43,
	22, 38, 19, 49, 12, 15, 11, 63, 29, 14, 24, 27, 57, 25, 56, 12, 37, 60, 31, 12,
	56, 49, 23, 13, 53, 18, 47, 35, 36, 58, 32, 9, 39, 59, 0, 26, 35, 37, 33, 11,
	48, 27, 0, 21, 60, 26, 32, 54, 46, 32, 55, 41, 57, 8, 38, 44, 29, 43, 10, 61,
	23, 52, 40, 23, 23, 26, 36, 37, 14, 53, 27, 2, 25, 32, 28, 50, 9, 32, 40, 45,
	0, 18, 23, 9, 17, 55, 42, 9, 34, 58, 38, 1, 30, 5, 41, 7, 20, 15, 14, 49,
	43, 59, 40, 34, 58, 29, 53, 26, 58, 37, 35, 42, 48, 46, 48, 11, 48, 46, 58, 56,
	41, 37, 51, 23, 49, 8, 16, 16, 58, 22, 38, 10, 2, 38, 24, 34, 46, 62, 63, 19,
	58, 10, 34, 24, 1, 11, 47, 53, 31, 10, 38, 1, 25, 30, 28, 56, 50, 14, 26, 42,
	47, 45, 12, 50, 6, 27, 17, 3, 23, 30, 25, 27, 15, 14, 60, 44, 51, 59, 63, 23,
	22, 35, 32, 39, 59, 8, 25, 25, 1, 30, 52, 1, 44, 33, 4, 15, 31, 18, 4, 24,
	27, 43, 8, 61, 40, 8, 16, 7, 1, 22, 7, 34, 49, 33, 6, 57, 2, 33, 24, 22,
	48, 13, 25, 34, 26, 0, 47, 44, 58, 15, 43, 30, 23, 6, 27, 30, 52, 5, 0, 60,
	6, 38, 55, 59, 39, 43, 2, 58, 58, 22, 31, 53, 55, 29, 56, 26, 44, 59, 8, 53,
	13, 1, 49, 56, 19, 36, 15, 27, 3, 41, 41, 17, 19, 17, 21, 10, 3, 6, 59, 5,
	48, 15, 6, 45, 40, 38, 55, 10, 30, 63, 61, 52, 24, 10, 32, 10, 27, 2, 36, 50,
	30, 25, 62, 55, 11, 21, 61, 63, 20, 11, 28, 20, 22, 38, 42, 13, 63, 0, 35, 15,
	15, 3, 11, 29, 29, 46, 48, 7, 6, 31, 32, 27, 58, 4, 18, 7, 29, 36, 44, 34,
	48, 61, 13, 15, 34, 62, 41, 16, 31, 51, 62, 14, 45, 17, 56, 0, 31, 10, 56, 21,
	0, 25, 59, 29, 58, 9, 51, 41, 59, 0, 51, 17, 37, 14, 50, 47, 50, 61, 37, 41,
	60, 45, 24, 22, 31, 41, 31, 49, 52, 32, 14, 45, 39, 19, 43, 35, 20, 39, 41, 45,
	60, 30, 10, 5, 19, 26, 10, 34, 11, 2, 3, 39, 60, 30, 22, 35, 25, 61, 4, 12,
	35, 52, 45, 29, 26, 46, 15, 18, 53, 47, 34, 10, 21, 1, 6, 46, 58, 44, 5, 7,
	25, 11, 34, 22, 12, 38, 12, 58, 11, 10, 55, 63, 25, 13, 50, 54, 35, 12, 17, 12,
	6, 61, 47, 32, 1, 53, 34, 39, 5, 51, 21, 3, 15, 17, 54, 58, 36, 24, 57, 26,
	37, 4, 40, 15, 26, 14, 63, 46, 6, 31, 5, 28, 41, 19, 13, 48, 43, 45, 56, 12,
	21, 36, 63, 43, 0, 58, 27, 13, 7, 46, 12, 3, 43, 61, 63, 10, 7, 23, 46, 35,
	32, 35, 7, 13, 40, 55, 13, 7, 44, 0, 58, 59, 25, 34, 28, 62, 50, 5, 60, 25,
	5, 44, 43, 2, 13, 44, 6, 2, 27, 21, 11, 51, 19, 32, 38, 56, 26, 46, 38, 24,
	25, 28, 24, 37, 2, 19, 34, 48, 9, 22, 41, 30, 58, 9, 54, 17, 25, 17, 15, 43,
	63, 17, 40, 62, 60, 28, 24, 50, 50, 46, 17, 17, 44, 47, 1, 53, 17, 12, 27, 11,
	53, 60, 32, 62, 52, 49, 1, 24, 59, 12, 28, 19, 57, 8, 41, 6, 31, 40, 58, 63,
	41, 20, 55, 44, 13, 21, 49, 28, 50, 6, 8, 4, 10, 3, 9, 51, 36, 49, 20, 6,
	22, 21, 13, 17, 16, 28, 4, 58, 33, 27, 17, 39, 12, 45, 25, 54, 17, 19, 57, 14,
	6, 22, 31, 57, 40, 39, 23, 32, 29, 56, 48, 7, 33, 1, 8, 52, 27, 10, 6, 18,
	37, 17, 34, 56, 16, 39, 52, 27, 53, 50, 61, 35, 4, 8, 7, 36, 6, 60, 34, 42,
	35, 54, 9, 28, 20, 12, 24, 12, 1, 62, 29, 6, 0, 24, 24, 49, 51, 48, 49, 48,
	16, 3, 50, 3, 48, 52, 27, 60, 46, 50, 2, 58, 15, 21, 5, 25, 55, 0, 41, 10,
	62, 29, 41, 62, 57, 3, 19, 12, 14, 8, 18, 48, 18, 26, 26, 62, 55, 57, 56, 61,
	11, 51, 19, 27, 37, 8, 19, 12, 53, 61, 10, 17, 7, 35, 14, 38, 50, 63, 60, 62,
	5, 29, 28, 62, 10, 28, 13, 14, 55, 44, 55, 9, 20, 49, 34, 46, 37, 29, 18, 44,
	10, 6, 3, 55, 17, 40, 5, 56, 36, 7, 43, 18, 34, 25, 32, 29, 6, 61, 59, 5,
	44, 39, 21, 0, 34, 34, 3, 56, 58, 3, 24, 6, 45, 40, 7, 37, 18, 52, 46, 19,
	15, 48, 0, 32, 9, 44, 18, 63, 10, 26, 36, 44, 31, 22, 29, 49, 22, 13, 57, 9,
	41, 34, 26, 30, 30, 62, 6, 29, 3, 9, 5, 36, 38, 12, 19, 23, 31, 48, 59, 24,
	23, 7, 7, 0, 62, 25, 21, 62, 1, 62, 14, 49, 5, 16, 20, 25, 39, 35, 62, 59,
	34, 7, 16, 62, 9, 63, 7, 51, 28, 10, 55, 21, 21, 53, 0, 12, 58, 1, 30, 52,
	40, 39, 50, 25, 12, 3, 11, 45, 49, 60, 0, 36, 25, 29, 31, 3, 44, 12, 5, 7,
	53, 36, 27, 32, 15, 54, 47, 63, 53, 53, 35, 9, 46, 22, 41, 46, 3, 62, 10, 18,
	40, 59, 15, 60, 7, 39, 60, 52, 36, 52, 55, 26, 57, 23, 28, 12, 3, 37, 3, 17,
	31, 55, 18, 5, 63, 32, 33, 22, 17, 9, 42, 33, 33, 9, 21, 57, 45, 52, 12, 11,
	63, 25, 6, 8, 40, 50, 3, 14, 25, 18, 40, 60, 22, 20, 32, 8, 59, 47, 23, 2,
	42, 40, 34, 26, 25, 6, 45, 29, 62, 5, 59, 10, 20, 59, 45, 23, 31, 49, 39, 30,
	52, 18, 31, 50, 0, 28, 46, 11, 39, 13, 14, 9, 31, 9, 29, 38, 23, 15, 47, 40,
	31, 52, 44, 59, 42, 30, 13, 25, 43, 19, 21, 47, 61, 12, 24, 62, 48, 17, 36, 34,
	40, 9, 20, 25, 59, 60, 21, 56, 28, 16, 11, 43, 4, 27, 31, 22, 12, 56, 34, 60,
	2, 59, 61, 51, 52, 56, 42, 13, 61, 11, 61, 49, 13, 60, 58, 37, 47, 62, 35, 58,
	2, 46, 42, 21, 3, 49, 4, 9, 42, 31, 3, 25, 36, 8, 53, 19, 52, 47, 14, 34,
	16, 15, 31, 44, 17, 37, 63, 2, 25, 42, 33, 22, 22, 10, 46, 55, 13, 59, 8, 50,
	23, 17, 3, 44, 43, 4, 44, 43, 30, 2, 19, 49, 60, 20, 41, 16, 41, 34, 2, 5,
	21, 3, 35, 9, 36, 58, 57, 14, 47, 27, 1, 20, 41, 0, 6, 40, 60, 16, 14, 10,
	27, 13, 13, 29, 7, 29, 5, 56, 55, 59, 50, 42, 7, 28, 22, 16, 58, 27, 39, 62,
	19, 32, 4, 12, 35, 46, 16, 24, 42, 0, 22, 53, 32, 31, 25, 8, 62, 26, 63, 23,
	10, 21, 39, 40, 0, 23, 16, 11, 25, 25, 61, 62, 54, 36, 22, 58, 5, 51, 39, 39,
	49, 26, 13, 21, 31, 13, 59, 48, 47, 18, 10, 50, 19, 40, 34, 53, 16, 6, 43, 34,
	25, 56, 56, 35, 41, 14, 19, 49, 62, 5, 26, 60, 21, 48, 38, 14, 21, 31, 42, 39,
	22, 21, 39, 58, 6, 1, 0, 5, 42, 11, 9, 32, 34, 60, 25, 21, 55, 19, 4, 32,
	49, 19, 48, 39, 38, 20, 50, 27, 1, 34, 29, 10, 21, 39, 2, 56, 52, 60, 36, 55,
	26, 15, 18, 7, 57, 14, 1, 59, 0, 46, 42, 48, 13, 23, 27, 21, 46, 13, 50, 44,
	37, 57, 30, 39, 26, 45, 50, 47, 57, 49, 9, 36, 55, 28, 20, 36, 3, 0, 29, 9,
	45, 9, 48, 45, 59, 29, 60, 35, 19, 28, 61, 10, 41, 1, 14, 14, 57, 24, 7, 58,
	35, 50, 59, 56, 59, 35, 15, 19, 35, 28, 40, 22, 41, 37, 15, 40, 44, 17, 1, 25,
	17, 19, 56, 31, 33, 12, 33, 59, 46, 50, 16, 52, 58, 55, 8, 40, 42, 44, 40, 37,
	6, 54, 1, 31, 0, 20, 32, 48, 15, 48, 35, 20, 21, 56, 43, 54, 34, 9, 42, 4,
	61, 49, 6, 37, 2, 55, 27, 56, 38, 16, 53, 5, 12, 56, 21, 50, 10, 57, 27, 30,
	32, 35, 35, 54, 10, 46, 46, 48, 32, 24, 24, 39, 23, 1, 0, 58, 27, 14, 21, 24,
	31, 63, 8, 49, 36, 44, 27, 3, 28, 48, 37, 49, 44, 15, 6, 47, 13, 2, 56, 43,
	20, 16, 63, 41, 44, 4, 14, 40, 25, 14, 21, 40, 28, 62, 46, 48, 63, 29, 16, 35,
	21, 16, 8, 44, 9, 58, 20, 5, 0, 24, 7, 5, 11, 28, 3, 53, 0, 6, 53, 6,
	28, 35, 56, 6, 24, 28, 23, 60, 35, 34, 57, 59, 37, 25, 5, 1, 13, 52, 59, 44,
	39, 44, 8, 4, 43, 27, 4, 1, 29, 55, 60, 51, 20, 13, 12, 17, 31, 6, 20, 12,
	11, 51, 55, 51, 21, 42, 52, 23, 61, 2, 13, 62, 6, 17, 49, 38, 40, 29, 35, 10,
	27, 2, 21, 60, 39, 61, 14, 62, 5, 53, 23, 21, 54, 10, 46, 19, 21, 28, 8, 12,
	22, 12, 61, 10, 61, 25, 56, 35, 49, 58, 32, 3, 18, 8, 8, 31, 22, 50, 38, 60,
	29, 54, 22, 21, 21, 49, 18, 58, 45, 58, 27, 29, 35, 11, 49, 21, 42, 29, 22, 52,
	49, 11, 42, 54, 14, 55, 42, 51, 36, 1, 50, 17, 24, 31, 47, 50, 11, 8, 3, 37,
	42, 53, 25, 57, 37, 48, 6, 46, 21, 58, 23, 9, 56, 44, 0, 3, 11, 14, 49, 40,
	38, 54, 13, 58, 18, 43, 59, 20, 12, 42, 27, 10, 47, 29, 48, 31, 23, 44, 61, 16,
	15, 15, 22, 23, 48, 14, 58, 13, 6, 32, 15, 20, 18, 37, 2, 6, 16, 19, 31, 47,
	47, 18, 52, 57, 34, 2, 46, 18, 18, 5, 50, 24, 46, 18, 13, 41, 8, 8, 13, 16,
	4, 23, 43, 45,
}

var routeTable = []RouteNode{
	{X: 60, Y: 31, SuccA: 0, SuccB: 3},
	{X: 50, Y: 14, SuccA: 2, SuccB: 0},
	{X: 4, Y: 27, SuccA: 3, SuccB: 1},
	{X: 38, Y: 20, SuccA: 4, SuccB: 2},
	{X: 42, Y: 27, SuccA: 5, SuccB: 3},
	{X: 44, Y: 17, SuccA: 6, SuccB: 4},
	{X: 23, Y: 56, SuccA: 7, SuccB: 5},
	{X: 18, Y: 52, SuccA: 8, SuccB: 6},
	{X: 55, Y: 42, SuccA: 9, SuccB: 7},
	{X: 38, Y: 11, SuccA: 10, SuccB: 8},
	{X: 35, Y: 40, SuccA: 11, SuccB: 9},
	{X: 49, Y: 18, SuccA: 12, SuccB: 10},
	{X: 5, Y: 42, SuccA: 13, SuccB: 11},
	{X: 55, Y: 1, SuccA: 14, SuccB: 12},
	{X: 49, Y: 12, SuccA: 15, SuccB: 13},
	{X: 46, Y: 50, SuccA: 16, SuccB: 14},
	{X: 48, Y: 22, SuccA: 17, SuccB: 15},
	{X: 21, Y: 46, SuccA: 18, SuccB: 16},
	{X: 20, Y: 53, SuccA: 19, SuccB: 17},
	{X: 16, Y: 38, SuccA: 20, SuccB: 18},
	{X: 25, Y: 55, SuccA: 21, SuccB: 19},
	{X: 24, Y: 44, SuccA: 22, SuccB: 20},
	{X: 32, Y: 44, SuccA: 23, SuccB: 21},
	{X: 43, Y: 33, SuccA: 0, SuccB: 22},
}
