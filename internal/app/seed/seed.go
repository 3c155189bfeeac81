// Package seed holds the bundled static dataset: the read-only articles,
// learning resources, and quotes the app ships with. Seed items carry
// synthetic "static_*" ids; the first user mutation against one of them
// promotes it into the live collection under that same id, after which the
// seed copy is suppressed at merge time.
package seed

import (
	"fmt"
	"time"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// Attribution stamped on every seed item.
const (
	AuthorName = "MUF"
	AuthorID   = "muf_official"
	authorRole = models.RoleAdmin
)

// DefaultIdeaCount is how many seed articles Ideas generates unless
// configured otherwise.
const DefaultIdeaCount = 1000

func daysAgo(n int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -n).Truncate(time.Second)
}

type topic struct {
	term string
	cat  string
}

var topics = []topic{
	{"الذكاء الاصطناعي", "تقنية"},
	{"الفلسفة الرواقية", "فلسفة"},
	{"البلوك تشين", "تقنية"},
	{"الفيزياء الكمومية", "علوم"},
	{"الأدب الروسي", "أدب"},
	{"عصر النهضة", "فن"},
	{"علم النفس السلوكي", "اجتماع"},
	{"التغير المناخي", "علوم"},
	{"الميتافيرس", "تقنية"},
	{"الوجودية", "فلسفة"},
	{"الأمن السيبراني", "تقنية"},
	{"تحرير الجينات", "علوم"},
	{"الفن التجريدي", "فن"},
	{"الاقتصاد الكلي", "اجتماع"},
	{"الرواية الحديثة", "أدب"},
	{"الخوارزميات", "تقنية"},
	{"علم الاجتماع", "اجتماع"},
	{"الثقوب السوداء", "علوم"},
	{"العمارة الإسلامية", "فن"},
	{"الشعر الجاهلي", "أدب"},
	{"إنترنت الأشياء", "تقنية"},
	{"الأخلاق النفعية", "فلسفة"},
	{"الطاقة المتجددة", "علوم"},
	{"السينما العالمية", "فن"},
	{"النقد الأدبي", "أدب"},
	{"الحوسبة السحابية", "تقنية"},
	{"نظرية المعرفة", "فلسفة"},
	{"علم الأعصاب", "علوم"},
	{"التصوير الفوتوغرافي", "فن"},
	{"الأنثروبولوجيا", "اجتماع"},
}

var titleTemplates = []string{
	"مستقبل %s في القرن الحادي والعشرين",
	"تاريخ %s: رحلة عبر الزمن",
	"أهمية %s في حياتنا اليومية",
	"تحديات %s والفرص المتاحة",
	"مدخل شامل إلى عالم %s",
	"كيف يغير %s وجه العالم؟",
	"دراسة تحليلية في مفاهيم %s",
	"%s بين النظرية والتطبيق",
	"حقائق مذهلة عن %s يجب أن تعرفها",
	"تأثير %s على المجتمع البشري",
	"أخلاقيات %s: نظرة نقدية",
	"تطور %s عبر العصور",
	"علاقة %s بالعلوم الأخرى",
	"لماذا يجب عليك تعلم %s؟",
	"خرافات وحقائق حول %s",
}

const articleBody = `إن دراسة "%[1]s" تفتح آفاقاً واسعة لفهم تقاطعات المعرفة في عصرنا الراهن. يتناول هذا المقال التحليلي كيف أثر "%[1]s" على مسار التطور الإنساني، مع التركيز على الجوانب الأخلاقية والعملية التي تمس حياتنا اليومية.

من خلال البحث في أصول "%[1]s"، نجد أنه يمثل حجر زاوية في فهمنا لـ %[2]s. يهدف متحف الفكر من خلال هذا الطرح إلى تعميق الوعي الجماهيري حول التحديات والفرص التي يفرضها هذا المفهوم على مستقبل الحضارة.

إننا مدعوون اليوم لإعادة قراءة المفاهيم التقليدية لـ "%[1]s" برؤية نقدية معاصرة، تستوعب المتغيرات التقنية والاجتماعية المتسارعة.`

// Ideas generates n seed articles with ids static_muf_0..static_muf_(n-1).
// A non-positive n yields DefaultIdeaCount. The like/view counters are
// decorative seed values; promotion discards the like count entirely.
func Ideas(n int) []models.Idea {
	if n <= 0 {
		n = DefaultIdeaCount
	}
	items := make([]models.Idea, 0, n)
	for i := 0; i < n; i++ {
		tp := topics[i%len(topics)]
		tmpl := titleTemplates[(i+i/len(topics))%len(titleTemplates)]
		items = append(items, models.Idea{
			ID:         fmt.Sprintf("static_muf_%d", i),
			Title:      fmt.Sprintf(tmpl, tp.term),
			Category:   tp.cat,
			Content:    fmt.Sprintf(articleBody, tp.term, tp.cat),
			Author:     AuthorName,
			AuthorID:   AuthorID,
			AuthorRole: authorRole,
			Views:      100 + (i*13)%2000,
			Likes:      20 + (i*7)%600,
			LikedBy:    "",
			Featured:   i%25 == 0,
			CreatedAt:  daysAgo(i % 365),
		})
	}
	return items
}

type courseSpec struct {
	title string
	typ   string
	link  string
	desc  string
}

var courseSpecs = []courseSpec{
	{"CS50: علوم الحاسب", "كورس أونلاين", "https://pll.harvard.edu/course/cs50", "مقدمة هارفارد الشهيرة في علوم الحاسب والبرمجة."},
	{"Elzero Web School", "قناة يوتيوب", "https://www.youtube.com/c/ElzeroInfo", "المسار الشامل لتعلم تطوير الويب باللغة العربية."},
	{"Coursera", "منصة تعليمية", "https://www.coursera.org", "دورات من أفضل جامعات العالم في شتى المجالات."},
	{"EdX", "منصة تعليمية", "https://www.edx.org", "تعلم من هارفارد وMIT وغيرهم مجاناً."},
	{"Khan Academy", "منصة تعليمية", "https://www.khanacademy.org", "دروس مجانية في الرياضيات والعلوم والاقتصاد."},
	{"Crash Course", "قناة يوتيوب", "https://www.youtube.com/user/crashcourse", "شرح مبسط للتاريخ، العلوم، الفلسفة، والأدب."},
	{"TED", "منصة تعليمية", "https://www.ted.com", "أفكار تستحق الانتشار ومحادثات ملهمة."},
	{"MIT OpenCourseWare", "كورس أونلاين", "https://ocw.mit.edu", "مواد دراسية من معهد ماساتشوستس للتكنولوجيا."},
	{"Project Gutenberg", "كتب", "https://www.gutenberg.org", "مكتبة تضم أكثر من 60 ألف كتاب مجاني."},
	{"Goodreads", "كتب", "https://www.goodreads.com", "مجتمع للقراء ومراجعات الكتب."},
	{"Stanford Encyclopedia of Philosophy", "مقالات", "https://plato.stanford.edu", "المرجع الأول في الفلسفة الأكاديمية."},
	{"National Geographic", "مقالات", "https://www.nationalgeographic.com", "استكشف الطبيعة والعلوم والتاريخ."},
	{"Medium", "مقالات", "https://medium.com", "مقالات متنوعة من كتاب ومفكرين مستقلين."},
	{"ArXiv", "مقالات", "https://arxiv.org", "أوراق بحثية علمية في الفيزياء والرياضيات وعلوم الحاسب."},
}

// Courses returns the seed learning resources with ids static_course_0..N.
func Courses() []models.Course {
	items := make([]models.Course, 0, len(courseSpecs))
	for i, c := range courseSpecs {
		items = append(items, models.Course{
			ID:          fmt.Sprintf("static_course_%d", i),
			Title:       c.title,
			Type:        c.typ,
			Description: c.desc,
			Link:        c.link,
			AddedBy:     AuthorName,
			AddedByRole: authorRole,
			Likes:       100 + i*15,
			Views:       500 + i*50,
			CreatedAt:   daysAgo(i * 2),
		})
	}
	return items
}

type quoteSpec struct {
	text   string
	author string
}

var quoteSpecs = []quoteSpec{
	{"العقل ليس وعاءً يجب ملؤه، ولكنه نار يجب إيقادها.", "بلوتارك"},
	{"الرأي هو شيء وسط بين العلم والجهل.", "أرسطو"},
	{"أنا أفكر، إذن أنا موجود.", "رينيه ديكارت"},
	{"المعرفة قوة.", "فرانسيس بيكون"},
	{"كلما ازددت علماً، ازداد إحساسي بجهلي.", "أينشتاين"},
	{"الإنسان عدو ما يجهل.", "علي بن أبي طالب"},
	{"في المعرفة، كما في السباحة، من لا يتقدم يغرق.", "مثل صيني"},
	{"التعليم هو السلاح الأقوى الذي يمكنك استخدامه لتغيير العالم.", "نيلسون مانديلا"},
	{"قطرة المطر تحفر في الصخر، ليس بالعنف ولكن بالتكرار.", "أوفيد"},
	{"من لم يذق مر التعلم ساعة، تجرع ذل الجهل طول حياته.", "الشافعي"},
	{"قمة الجبل ليست إلا القاع لجبل آخر.", "جبران خليل جبران"},
	{"الخيال أهم من المعرفة.", "أينشتاين"},
	{"أفضل طريقة للتنبؤ بالمستقبل هي اختراعه.", "آلان كاي"},
	{"الحرية هي الحق في أن تقول للناس ما لا يريدون سماعه.", "جورج أورويل"},
	{"التغيير هو القانون الوحيد الثابت في الحياة.", "هيراقليدس"},
	{"كن التغيير الذي تريد أن تراه في العالم.", "غاندي"},
}

// Quotes returns the seed quotes wall. Seed quotes have no mutation path:
// they are never promoted and never deletable through normal controls.
func Quotes() []models.Quote {
	items := make([]models.Quote, 0, len(quoteSpecs))
	for i, q := range quoteSpecs {
		items = append(items, models.Quote{
			ID:        fmt.Sprintf("static_quote_%d", i),
			Text:      q.text,
			Author:    q.author,
			AddedBy:   AuthorName,
			IsDefault: true,
			CreatedAt: daysAgo(i),
		})
	}
	return items
}
