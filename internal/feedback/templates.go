package feedback

// Sinhala feedback text. Templates are drawn at random so repeated
// attempts don't hear the same phrasing every time.

var correctTemplates = []string{
	"නිවැරදියි! ඔබ හොඳ වැඩක් කළා.",
	"එය හරි! ඔබ දැන් මෙම සංකල්පය තේරුම් ගනී.",
	"නියමයි! ඔබ නිවැරදිව ගණනය කර ඇත.",
}

// Incorrect templates may carry an {answer} placeholder that is replaced
// with the correct answer.
var incorrectTemplates = []string{
	"එය හරි නැත. නැවත උත්සාහ කරන්න.",
	"වැරදියි. ඔබේ පිළිතුර {answer} විය යුතුයි.",
	"ඔබේ පිළිතුර වැරදියි. මේ ගැන නැවත සිතන්න.",
}

var encouragementTemplates = []string{
	"ඔබට මෙය කළ හැකිය! නැවත උත්සාහ කරන්න.",
	"මෙම සංකල්පය අපහසු විය හැකිය. ඉවසීමෙන් නැවත උත්සාහ කරන්න.",
	"වැරදීම් ඉගෙනීමේ ක්‍රියාවලියේ කොටසක්. නැවත උත්සාහ කරන්න.",
}

// nextSteps is read to the student after every wrong answer.
var nextSteps = []string{
	"ගැටලුව නැවත කියවන්න.",
	"පියවරෙන් පියවර විසඳුම සඳහා උත්සාහ කරන්න.",
	"සමාන ගැටලු සඳහා උදාහරණ බලන්න.",
}

// errorExplanations maps a classified error to its Sinhala explanation.
// Off-by-one and format errors intentionally have none: the generic
// feedback text already covers them.
var errorExplanations = map[ErrorType]string{
	ErrorSignReversal:        "ඔබ සලකුණු වැරදියට භාවිතා කර ඇත. ධන සහ ඍණ සලකුණු පිළිබඳව ප්‍රවේශම් වන්න.",
	ErrorCalculation:         "ගණනය කිරීමේ දෝෂයක් ඇත. කරුණාකර ඔබේ සංඛ්‍යා නැවත පරීක්ෂා කරන්න.",
	ErrorDecimalMisalignment: "දශම ස්ථානය වැරදියි. දශම ස්ථාන ගැලපීම පිළිබඳව ප්‍රවේශම් වන්න.",
}
