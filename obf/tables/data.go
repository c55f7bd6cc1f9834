// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package tables

var deterministicSpacesEntries = []Entry{
	{" ", "\u2800"}, // BRAILLE PATTERN BLANK
}

var randomSpacesEntries = []Entry{
	{" ", "\u2800\u2005"}, // BRAILLE PATTERN BLANK, FOUR-PER-EM SPACE
}

var partialSpacesEntries = []Entry{
	{" ", " \u2800"}, // SPACE, BRAILLE PATTERN BLANK
}

var deterministicEntries = []Entry{
	{" ", "\u2800"}, // BRAILLE PATTERN BLANK
	{",", "\u201A"},
	{"-", "\u2010"},
	{".", "\u2024"},
	{":", "\u0589"},
	{";", "\u037E"},
	{"A", "\u0410"},
	{"B", "\u0392"},
	{"C", "\u03F9"},
	{"D", "\u018A"},
	{"E", "\u0415"},
	{"F", "\u0191"},
	{"G", "\u050C"},
	{"H", "\u0397"},
	{"I", "\u0406"},
	{"J", "\u0408"},
	{"K", "\u039A"},
	{"L", "\u2CD0"},
	{"M", "\u041C"},
	{"N", "\u039D"},
	{"O", "\u041E"},
	{"P", "\u03A1"},
	{"Q", "\u051A"},
	{"R", "\u024C"},
	{"S", "\u0405"},
	{"T", "\u0422"},
	{"U", "\u054D"},
	{"V", "\u0474"},
	{"W", "\u051C"},
	{"X", "\u0425"},
	{"Y", "\u04AE"},
	{"Z", "\u0396"},
	{"a", "\u0430"},
	{"b", "\u0253"},
	{"c", "\u0441"},
	{"d", "\u0501"},
	{"e", "\u0435"},
	{"f", "\u0192"},
	{"g", "\u0261"},
	{"h", "\u04BA"},
	{"i", "\u0456"},
	{"j", "\u0458"},
	{"k", "\u0199"},
	{"l", "\u029F"},
	{"m", "\u028D"},
	{"n", "\u0274"},
	{"o", "\u043E"},
	{"p", "\u0440"},
	{"q", "\u051B"},
	{"r", "\u027E"},
	{"s", "\u0455"},
	{"t", "\u1D1B"},
	{"u", "\u03C5"},
	{"v", "\u0475"},
	{"w", "\u0461"},
	{"x", "\u0445"},
	{"y", "\u01B4"},
	{"z", "\u1D22"},
}

var randomEntries = []Entry{
	{" ", "\u2800\u2005"}, // BRAILLE PATTERN BLANK, FOUR-PER-EM SPACE
	{",", "\u201A"},
	{"-", "\u2010"},
	{".", "\u2024"},
	{":", "\u0589"},
	{";", "\u037E"},
	{"A", "\u0391\u0410"},
	{"B", "\u0392\u0412"},
	{"C", "\u03F9\u0421"},
	{"D", "\uA4D3\u018A"},
	{"E", "\u0395\u0415"},
	{"F", "\uA4DD\u0191"},
	{"G", "\u050C\uA4D6"},
	{"H", "\u0397\u041D"},
	{"I", "\u0399\u0406\u04C0"},
	{"J", "\u0408\u037F"},
	{"K", "\u039A\u041A"},
	{"L", "\uA4E1\u053C"},
	{"M", "\u039C\u041C"},
	{"N", "\u039D\uA4E0"},
	{"O", "\u039F\u041E\u0555"},
	{"P", "\u03A1\u0420"},
	{"Q", "\u051A\u01EA"},
	{"R", "\u024C\uA4E3"},
	{"S", "\u0405\u054F"},
	{"T", "\u03A4\u0422"},
	{"U", "\uA4F4\u054D"},
	{"V", "\uA4E6\u0474"},
	{"W", "\u051C\uA4EA"},
	{"X", "\u03A7\u0425"},
	{"Y", "\u03A5\u04AE"},
	{"Z", "\u10CD\uA4DC"},
	{"a", "\u0430\u0105"},
	{"b", "\u0185\u0253"},
	{"c", "\u03F2\u0441"},
	{"d", "\u0501\u0257"},
	{"e", "\u0435\u0229"},
	{"f", "\uAB35\u1E9D"},
	{"g", "\u0261\u0260"},
	{"h", "\u04BA\u10B9"},
	{"i", "\u1F30\u1F31"},
	{"j", "\u03F3\u0458"},
	{"k", "\u03BA\u043A\u2C95\u1D0B"},
	{"l", "\u029F\u2CD1"},
	{"m", "\u028D\u043C\u1D0D"},
	{"n", "\u0274\u2C9B"},
	{"o", "\u03BF\u043E\u1D0F"},
	{"p", "\u0440\u01BF"},
	{"q", "\u051B\u024B"},
	{"r", "\u027C\u027E"},
	{"s", "\u0455\u015F\u0219\u1E63"},
	{"t", "\u0163\u021B\u1E6D"},
	{"u", "\u03C5\u1D1C"},
	{"v", "\u03BD\u0475"},
	{"w", "\u0461\u051D"},
	{"x", "\u0445\u04B3"},
	{"y", "\u03B3\u04AF"},
	{"z", "\u01B6\u1D76"},
}

var partialEntries = []Entry{
	{" ", " \u2800"}, // SPACE, BRAILLE PATTERN BLANK
	{",", ",\u201A"},
	{"-", "-\u2010"},
	{".", ".\u2024"},
	{":", ":\u0589"},
	{";", ";\u037E"},
	{"A", "A\u0391\u0410"},
	{"B", "B\u0392\u0412"},
	{"C", "C\u03F9\u0421"},
	{"D", "D\uA4D3"},
	{"E", "E\u0395\u0415"},
	{"F", "F\uA4DD"},
	{"G", "G\u050C"},
	{"H", "H\u0397\u041D"},
	{"I", "I\u0399\u0406\u04C0"},
	{"J", "J\u0408"},
	{"K", "K\u039A\u041A"},
	{"L", "L\uA4E1"},
	{"M", "M\u039C\u041C"},
	{"N", "N\u039D"},
	{"O", "O\u039F\u041E\u0555"},
	{"P", "P\u03A1\u0420"},
	{"Q", "Q\u051A"},
	{"R", "R\u024C"},
	{"S", "S\u0405\u054F"},
	{"T", "T\u03A4\u0422"},
	{"U", "U\uA4F4"},
	{"V", "V\uA4E6"},
	{"W", "W\u051C"},
	{"X", "X\u03A7\u0425"},
	{"Y", "Y\u03A5\u04AE"},
	{"Z", "Z\u0396"},
	{"a", "a\u0430"},
	{"b", "b\u0253"},
	{"c", "c\u03F2\u0441"},
	{"d", "d\u0501"},
	{"e", "e\u0435"},
	{"f", "f\u1E9D"},
	{"g", "g\u01E5"},
	{"h", "h\u04BA"},
	{"i", "i\u0456"},
	{"j", "j\u03F3\u0458"},
	{"k", "k\u0199"},
	{"l", "l\u1E3B"},
	{"m", "m\u0271"},
	{"n", "n\u1E49"},
	{"o", "o\u03BF\u043E\u1D0F"},
	{"p", "p\u0440"},
	{"q", "q\u051B"},
	{"r", "r\u027E"},
	{"s", "s\u0455"},
	{"t", "t\u0163"},
	{"u", "u\u03C5"},
	{"v", "v\u03BD\u0475"},
	{"w", "w\u051D"},
	{"x", "x\u0445"},
	{"y", "y\u01B4"},
	{"z", "z\u1D22"},
}

var partialAllEntries = []Entry{
	// OPEN BOX marks where a ZERO WIDTH NON-JOINER should go.
	{"\u2423", "\u200C"},
	{" ", " \u2800\u2005\u00A0"}, // SPACE, BRAILLE PATTERN BLANK, FOUR-PER-EM SPACE, NO-BREAK SPACE
	{",", ",\u201A\u02CF\u00B8"},
	{"-", "-\u2010\u2011\u2043\u2212"},
	{".", ".\u2024"},
	{":", ":\u0589\u2236\uA789"},
	{";", ";\u037E\u204F"},
	{"A", "A\u0391\u0410\uA4EE\u00C0\u00C1\u00C2\u00C3\u00C4\u00C5\u0100\u0102\u0104\u01CD\u01DE\u01E0\u01FA\u0200\u0202\u0226\u023A\u0386\u03AC\u04D0\u04D2\u1E00\u1EA0\u1EA2\u1EA4\u1EA6\u1EA8\u1EAA\u1EAC\u1EAE\u1EB0\u1EB2\u1EB4\u1EB6\u1F08\u1F09\u1F0A\u1F0B\u1F0C\u1F0D\u1F0E\u1F0F\u1FB8\u1FB9\u1FBA\u1FBB\u1FBC\u2C6D\uA7BA"},
	{"B", "B\u0392\u0412\u2C82\uA4D0\u0181\u0243\u1E02\u1E04\u1E06\u1E9E\uA796\uA7B4"},
	{"C", "C\u03F9\u0421\uA4DA\u00C7\u0106\u0108\u010A\u010C\u0187\u023B\u04AA\u1E08\u2CA4"},
	{"D", "D\uA4D3\u00D0\u010E\u0110\u0189\u018A\u1E0A\u1E0C\u1E0E\u1E10\u1E12"},
	{"E", "E\u0395\u0415\uA4F0\u00C8\u00C9\u00CA\u00CB\u0112\u0114\u0116\u0118\u011A\u0190\u01A9\u0204\u0206\u0228\u0246\u0388\u03A3\u04D6\u0510\u1E14\u1E16\u1E18\u1E1A\u1E1C\u1EB8\u1EBA\u1EBC\u1EBE\u1EC0\u1EC2\u1EC4\u1EC6\u1F18\u1F19\u1F1A\u1F1B\u1F1C\u1F1D\u1FC8\u1FC9\u2C88\uA72A\uA72B"},
	{"F", "F\uA4DD\u0191\u1E1E"},
	{"G", "G\u050C\uA4D6\u011C\u011E\u0120\u0122\u0193\u01E4\u01E6\u01F4\u1E20"},
	{"H", "H\u0397\u041D\u2C8E\uA4E7\u0124\u0126\u021E\u0389\u04A2\u04A4\u04C7\u04C9\u050A\u1E22\u1E24\u1E26\u1E28\u1E2A\u1F28\u1F29\u1F2A\u1F2B\u1F2C\u1F2D\u1F2E\u1F2F\u1FCA\u1FCB\u1FCC\u2C67\uA726\uA7AA"},
	{"I", "I\u0399\u0406\u04C0\u2C92\uA4F2\u00CC\u00CD\u00CE\u00CF\u0128\u012A\u012C\u012E\u0130\u0197\u01CF\u0208\u020A\u038A\u03AA\u0407\u04CF\u1E2C\u1E2E\u1EC8\u1ECA\u1F38\u1F39\u1F3A\u1F3B\u1F3C\u1F3D\u1F3E\u1F3F\u1FD8\u1FD9\u1FDA\u1FDB\uA7BC"},
	{"J", "J\u0408\uA4D9\u0134\u0248\u037F"},
	{"K", "K\u039A\u041A\u2C94\uA4D7\u0136\u0198\u01E8\u03CF\u049A\u049C\u049E\u04A0\u04C3\u051E\u1E30\u1E32\u1E34\u2C69\uA740\uA742\uA744\uA7A2"},
	{"L", "L\uA4E1\u0139\u013B\u013D\u013F\u0141\u023D\u053C\u1E36\u1E38\u1E3A\u1E3C\u2C60\u2C62\u2CD0\uA746\uA748\uA7AD"},
	{"M", "M\u039C\u03FA\u041C\uA4DF\u04CD\u1E3E\u1E40\u1E42\u2C6E\u2C98"},
	{"N", "N\u039D\uA4E0\u00D1\u0143\u0145\u0147\u014A\u019D\u01F8\u1E44\u1E46\u1E48\u1E4A\u2C9A\uA790\uA7A4"},
	{"O", "O\u039F\u041E\u0555\u1CBF\uA4F3\u00D2\u00D3\u00D4\u00D5\u00D6\u00D8\u014C\u014E\u0150\u01A0\u01D1\u020C\u020E\u022A\u022C\u022E\u0230\u038C\u04E6\u1E4C\u1E4E\u1E50\u1E52\u1ECC\u1ECE\u1ED0\u1ED2\u1ED4\u1ED6\u1ED8\u1EDA\u1EDC\u1EDE\u1EE0\u1EE2\u1F48\u1F49\u1F4A\u1F4B\u1F4C\u1F4D\u1FF8\u1FF9\u2C9E\uA668\uA66A\uA74C\uA7C0"},
	{"P", "P\u03A1\u0420\uA4D1\u01A4\u01F7\u048E\u1E54\u1E56\u1FEC\u2C63\u2CA2\uA750\uA752\uA764\uA766"},
	{"Q", "Q\u051A\u01EA\u01EC\u024A\u10AD\uA756\uA758"},
	{"R", "R\u024C\uA4E3\u0154\u0156\u0158\u01A6\u0210\u0212\u1E58\u1E5A\u1E5C\u1E5E\u2C64\uA7A6"},
	{"S", "S\u0405\u054F\u1CBD\uA4E2\uA682\u015A\u015C\u015E\u0160\u0218\u10BD\u1E60\u1E62\u1E64\u1E66\u1E68\u2C7E"},
	{"T", "T\u03A4\u0422\u0162\u0164\u0166\u01AC\u01AE\u021A\u023E\u0372\u0373\u04AC\u1E6A\u1E6C\u1E6E\u1E70\u2CA6\uA68C\uA690"},
	{"U", "U\uA4F4\u00D9\u00DA\u00DB\u00DC\u0168\u016A\u016C\u016E\u0170\u0172\u01AF\u01B2\u01D3\u01D5\u01D7\u01D9\u01DB\u0214\u0216\u0244\u0544\u054D\u10AE\u1E72\u1E74\u1E76\u1E78\u1E7A\u1EE4\u1EE6\u1EE8\u1EEA\u1EEC\u1EEE\u1EF0\uA7B8\uA7BE"},
	{"V", "V\uA4E6\u0474\u0476\u1E7C\u1E7E\uA75E"},
	{"W", "W\u051C\uA4EA\u0174\u1E80\u1E82\u1E84\u1E86\u1E88\u2C72\u2CB0\uA64C\uA760\uA7B6"},
	{"X", "X\u03A7\u0425\uA4EB\u04B2\u04FC\u04FE\u1E8A\u1E8C\u2CAC\uA7B3"},
	{"Y", "Y\u03A5\u04AE\uA4EC\u00A5\u00DD\u0176\u0178\u01B3\u0232\u024E\u038E\u03AB\u03D2\u03D3\u03D4\u04B0\u04EE\u04F0\u04F2\u10C4\u1E8E\u1EF2\u1EF4\u1EF6\u1EF8\u1EFE\u1F59\u1F5B\u1F5D\u1F5F\u1FE8\u1FE9\u1FEA\u1FEB\u2CA8"},
	{"Z", "Z\u0396\u10CD\uA4DC\u0179\u017B\u017D\u01B5\u0224\u1E90\u1E92\u1E94\u2C6B\u2C7F\u2C8C\uA640\uA642"},
	{"a", "a\u03B1\u0430\u00E0\u00E1\u00E2\u00E3\u00E4\u00E5\u0101\u0103\u0105\u01CE\u01DF\u01E1\u01FB\u0201\u0203\u0227\u0251\u04D1\u04D3\u1D00\u1D8F\u1D90\u1E01\u1E9A\u1EA1\u1EA3\u1EA5\u1EA7\u1EA9\u1EAB\u1EAD\u1EAF\u1EB1\u1EB3\u1EB5\u1EB7\u1F00\u1F01\u1F02\u1F03\u1F04\u1F05\u1F06\u1F07\u1F70\u1F71\u1FB0\u1FB1\u1FB2\u1FB3\u1FB4\u1FB6\u1FB7\u2C65\uA7BB"},
	{"b", "b\u0185\u0253\u00DF\u0180\u0183\u0184\u0299\u03B2\u1D03\u1D6C\u1D80\u1E03\u1E05\u1E07\u2C83\uA797\uA7B5"},
	{"c", "c\u03F2\u0441\u00A2\u00E7\u0107\u0109\u010B\u010D\u0188\u023C\u04AB\u1D04\u1E09\u2CA5"},
	{"d", "d\u0501\u010F\u0111\u018C\u0257\u1D05\u1D06\u1D6D\u1D81\u1D82\u1E0B\u1E0D\u1E0F\u1E11\u1E13"},
	{"e", "e\u0435\u00E8\u00E9\u00EA\u00EB\u0113\u0115\u0117\u0119\u011B\u0205\u0207\u0229\u0247\u025B\u03AD\u03B5\u03F5\u0450\u0451\u0454\u04BD\u04D7\u0511\u1D07\u1D92\u1E15\u1E17\u1E19\u1E1B\u1E1D\u1EB9\u1EBB\u1EBD\u1EBF\u1EC1\u1EC3\u1EC5\u1EC7\u1F10\u1F11\u1F12\u1F13\u1F14\u1F15\u1F72\u1F73\u2C78\u2C89\uAB32"},
	{"f", "f\uAB35\u0192\u0284\u1D6E\u1E1F\u1E9B\u1E9C\u1E9D\uA730"},
	{"g", "g\u0261\u011D\u011F\u0121\u0123\u01E5\u01E7\u01F5\u0260\u0262\u029B\u050D\u1D83\u1E21\uAB36"},
	{"h", "h\u04BA\u10B9\u0125\u0127\u021F\u0266\u0267\u029C\u0452\u045B\u04A3\u04A5\u04BB\u04C8\u04CA\u0526\u1E23\u1E25\u1E27\u1E29\u1E2B\u1E96\u2C68\u2C8F\uA695\uA727\uA795"},
	{"i", "i\u0456\u00A1\u00EC\u00ED\u00EE\u00EF\u0129\u012B\u012D\u012F\u0131\u01D0\u0209\u020B\u0268\u0269\u026A\u0390\u03AF\u03B9\u03CA\u0457\u1D96\u1E2D\u1E2F\u1EC9\u1ECB\u1F30\u1F31\u1F32\u1F33\u1F34\u1F35\u1F36\u1F37\u1F76\u1F77\u1FD0\u1FD1\u1FD2\u1FD3\u1FD6\u1FD7\uA7BD"},
	{"j", "j\u03F3\u0458\u0135\u01F0\u0237\u0249\u025F\u029D\u1D0A"},
	{"k", "k\u03BA\u043A\u2C95\u0137\u0138\u0199\u01E9\u045C\u049B\u049D\u049F\u04A1\u04C4\u051F\u1D0B\u1D84\u1E31\u1E33\u1E35\u2C6A\uA741\uA743\uA745\uA7A3"},
	{"l", "l\uA646\u013A\u013C\u013E\u0140\u0234\u026D\u029F\u1D0C\u1D85\u1E37\u1E39\u1E3B\u1E3D\u2CD1"},
	{"m", "m\u028D\u043C\u0271\u03FB\u04CE\u1D0D\u1D6F\u1D86\u1E3F\u1E41\u1E43\u2C99\uAB3A"},
	{"n", "n\u0274\u00F1\u0144\u0146\u0148\u0149\u014B\u01F9\u0235\u0272\u0273\u03AE\u03B7\u1D70\u1D87\u1E45\u1E47\u1E49\u1E4B\u1F20\u1F21\u1F22\u1F23\u1F24\u1F25\u1F26\u1F27\u1F74\u1F75\u1FC2\u1FC3\u1FC4\u1FC6\u1FC7\u2C9B\uA791\uA7A5\uAB3B"},
	{"o", "o\u03BF\u043E\u10FF\u00F2\u00F3\u00F4\u00F5\u00F6\u00F8\u014D\u014F\u0151\u01A1\u01D2\u020D\u020F\u022B\u022D\u022F\u0231\u03CC\u04E7\u1D0F\u1E4D\u1E4F\u1E51\u1E53\u1ECD\u1ECF\u1ED1\u1ED3\u1ED5\u1ED7\u1ED9\u1EDB\u1EDD\u1EDF\u1EE1\u1EE3\u1F40\u1F41\u1F42\u1F43\u1F44\u1F45\u1F78\u1F79\u2C7A\u2C9F\uA669\uA66B\uA74D\uA7C1\uAB3D"},
	{"p", "p\u0440\u00FE\u01A5\u01BF\u048F\u1D18\u1D29\u1D71\u1D7D\u1D88\u1E55\u1E57\u2CA3\uA751\uA753\uA765\uA767"},
	{"q", "q\u051B\u024B\uA757\uA759"},
	{"r", "r\u0491\u027C\u027E\u0155\u0157\u0159\u0211\u0213\u024D\u0280\u1D72\u1D89\u1E59\u1E5B\u1E5D\u1E5F\uA7A7\uAB46\uAB47\uAB48"},
	{"s", "s\u0455\u015B\u015D\u015F\u0161\u0219\u023F\u0282\u1D74\u1D8A\u1E61\u1E63\u1E65\u1E67\u1E69\uA731"},
	{"t", "t\u0288\u0163\u0165\u0167\u01AB\u01AD\u021B\u0236\u1D1B\u1D75\u1E6B\u1E6D\u1E6F\u1E71\u1E97\u2C61\u2C66\u2CA7\uA68D\uA691"},
	{"u", "u\u03C5\u00F9\u00FA\u00FB\u00FC\u0169\u016B\u016D\u016F\u0171\u0173\u01B0\u01D4\u01D6\u01D8\u01DA\u01DC\u0215\u0217\u03CD\u028B\u1D1C\u1D7E\u1D99\u1E73\u1E75\u1E77\u1E79\u1E7B\u1EE5\u1EE7\u1EE9\u1EEB\u1EED\u1EEF\u1EF1\u1F50\u1F51\u1F52\u1F53\u1F54\u1F55\u1F56\u1F57\u1F7A\u1F7B\u1FE0\u1FE1\u1FE2\u1FE3\u1FE6\u1FE7\uA7B9\uA7BF\uAB52"},
	{"v", "v\u03BD\u0475\u0477\u1D20\u1D8C\u1E7D\u1E7F\u2C71\u2C74\uA75F"},
	{"w", "w\u0461\u051D\u0175\u026F\u03C9\u03CE\u047F\u1D21\u1E81\u1E83\u1E85\u1E87\u1E89\u1E98\u1F60\u1F61\u1F62\u1F63\u1F64\u1F65\u1F66\u1F67\u1F7C\u1F7D\u1FF2\u1FF3\u1FF4\u1FF6\u1FF7\u2C73\u2CB1\uA64D\uA761\uA7B7"},
	{"x", "x\u0445\u03C7\u04B3\u04FD\u04FF\u1D8D\u1E8B\u1E8D\u2CAD\uAB53\uAB54\uAB55"},
	{"y", "y\u03B3\u04AF\u00FD\u00FF\u0177\u01B4\u0233\u024F\u0263\u028F\u045E\u04B1\u04EF\u04F1\u04F3\u1E8F\u1E99\u1EF3\u1EF5\u1EF7\u1EF9\u1EFF\u2CA9"},
	{"z", "z\u0225\u0240\u0290\u017A\u017C\u017E\u01B6\u0291\u1D22\u1D76\u1D8E\u1E91\u1E93\u1E95\u2C6C\u2C8D\uA641\uA643"},
}

var fullwidthEntries = []Entry{
	{" ", "\u3000"}, // IDEOGRAPHIC SPACE
	{"!", "\uFF01"},
	{"\"", "\uFF02"},
	{"#", "\uFF03"},
	{"$", "\uFF04"},
	{"%", "\uFF05"},
	{"&", "\uFF06"},
	{"'", "\uFF07"},
	{"(", "\uFF08"},
	{")", "\uFF09"},
	{"*", "\uFF0A"},
	{"+", "\uFF0B"},
	{",", "\uFF0C"},
	{"-", "\uFF0D"},
	{".", "\uFF0E"},
	{"/", "\uFF0F"},
	{"0", "\uFF10"},
	{"1", "\uFF11"},
	{"2", "\uFF12"},
	{"3", "\uFF13"},
	{"4", "\uFF14"},
	{"5", "\uFF15"},
	{"6", "\uFF16"},
	{"7", "\uFF17"},
	{"8", "\uFF18"},
	{"9", "\uFF19"},
	{":", "\uFF1A"},
	{";", "\uFF1B"},
	{"<", "\uFF1C"},
	{"=", "\uFF1D"},
	{">", "\uFF1E"},
	{"?", "\uFF1F"},
	{"@", "\uFF20"},
	{"A", "\uFF21"},
	{"B", "\uFF22"},
	{"C", "\uFF23"},
	{"D", "\uFF24"},
	{"E", "\uFF25"},
	{"F", "\uFF26"},
	{"G", "\uFF27"},
	{"H", "\uFF28"},
	{"I", "\uFF29"},
	{"J", "\uFF2A"},
	{"K", "\uFF2B"},
	{"L", "\uFF2C"},
	{"M", "\uFF2D"},
	{"N", "\uFF2E"},
	{"O", "\uFF2F"},
	{"P", "\uFF30"},
	{"Q", "\uFF31"},
	{"R", "\uFF32"},
	{"S", "\uFF33"},
	{"T", "\uFF34"},
	{"U", "\uFF35"},
	{"V", "\uFF36"},
	{"W", "\uFF37"},
	{"X", "\uFF38"},
	{"Y", "\uFF39"},
	{"Z", "\uFF3A"},
	{"[", "\uFF3B"},
	{"\\", "\uFF3C"},
	{"]", "\uFF3D"},
	{"^", "\uFF3E"},
	{"_", "\uFF3F"},
	{"`", "\uFF40"},
	{"a", "\uFF41"},
	{"b", "\uFF42"},
	{"c", "\uFF43"},
	{"d", "\uFF44"},
	{"e", "\uFF45"},
	{"f", "\uFF46"},
	{"g", "\uFF47"},
	{"h", "\uFF48"},
	{"i", "\uFF49"},
	{"j", "\uFF4A"},
	{"k", "\uFF4B"},
	{"l", "\uFF4C"},
	{"m", "\uFF4D"},
	{"n", "\uFF4E"},
	{"o", "\uFF4F"},
	{"p", "\uFF50"},
	{"q", "\uFF51"},
	{"r", "\uFF52"},
	{"s", "\uFF53"},
	{"t", "\uFF54"},
	{"u", "\uFF55"},
	{"v", "\uFF56"},
	{"w", "\uFF57"},
	{"x", "\uFF58"},
	{"y", "\uFF59"},
	{"z", "\uFF5A"},
	{"{", "\uFF5B"},
	{"|", "\uFF5C"},
	{"}", "\uFF5D"},
	{"~", "\uFF5E"},
	{"\u00A2", "\uFFE0"},
	{"\u00A3", "\uFFE1"},
	{"\u00A5", "\uFFE5"},
	{"\u00B7", "\uFF65"},
}
