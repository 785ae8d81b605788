package i18n

// Language is a supported language tag.
type Language string

const (
	English Language = "en"
	Hebrew  Language = "he"
	Spanish Language = "es"
	Korean  Language = "ko"
	French  Language = "fr"
	Chinese Language = "zh"
)

// Default is used when a user has no stored preference or a lookup misses.
const Default = English

// Key identifies a localizable message.
type Key string

const (
	KeyName           Key = "name"
	KeyWelcome        Key = "welcome"
	KeyFileSaved      Key = "file_saved"
	KeyFileNotFound   Key = "file_not_found"
	KeyFileRetrieved  Key = "file_retrieved"
	KeySendFile       Key = "send_file"
	KeyChooseLanguage Key = "choose_language"
	KeyLanguageSet    Key = "language_set"
)

// ChooseLanguagePrompt is shown with the language menu before any preference
// exists, so it repeats the prompt in every supported language.
const ChooseLanguagePrompt = "🌍 Please choose your language:\n请选择您的语言\nבחר את השפה שלך\nChoisissez votre langue\n언어를 선택하세요\nElige tu idioma"

var tables = map[Language]map[Key]string{
	English: {
		KeyName:           "🇬🇧 English",
		KeyWelcome:        "👋 Welcome, %s! 🌸\n\n✨ I am your personal file manager bot.\n\n📁 Send me any file and I will:\n• Forward it to a secure channel\n• Generate a unique 9-digit ID\n• Let you retrieve it anytime with /file <id>\n\n🚀 Fast, secure, and always available!",
		KeyFileSaved:      "✅ File saved successfully!\n\n🆔 Your unique ID: `%s`\n\n📥 Use /file %s to retrieve it anytime.",
		KeyFileNotFound:   "❌ File not found with ID: %s",
		KeyFileRetrieved:  "📥 Here is your file (ID: %s).",
		KeySendFile:       "📁 Please send me a file to save.",
		KeyChooseLanguage: "🌍 Please choose your language:",
		KeyLanguageSet:    "✅ Language set to English!",
	},
	Hebrew: {
		KeyName:           "🇮🇱 עברית",
		KeyWelcome:        "👋 ברוך הבא, %s! 🌸\n\n✨ אני בוט ניהול הקבצים האישי שלך.\n\n📁 שלח לי כל קובץ ואני:\n• אעביר אותו לערוץ מאובטח\n• אייצר מזהה ייחודי בן 9 ספרות\n• אאפשר לך לשלוף אותו בכל זמן עם /file <id>\n\n🚀 מהיר, מאובטח ותמיד זמין!",
		KeyFileSaved:      "✅ הקובץ נשמר בהצלחה!\n\n🆔 המזהה הייחודי שלך: `%s`\n\n📥 השתמש ב-/file %s כדי לשלוף אותו בכל זמן.",
		KeyFileNotFound:   "❌ קובץ לא נמצא עם מזהה: %s",
		KeyFileRetrieved:  "📥 הנה הקובץ שלך (מזהה: %s).",
		KeySendFile:       "📁 אנא שלח לי קובץ לשמירה.",
		KeyChooseLanguage: "🌍 בחר את השפה שלך:",
		KeyLanguageSet:    "✅ השפה הוגדרה לעברית!",
	},
	Spanish: {
		KeyName:           "🇪🇸 Español",
		KeyWelcome:        "👋 ¡Bienvenido, %s! 🌸\n\n✨ Soy tu bot personal de gestión de archivos.\n\n📁 Envíame cualquier archivo y yo:\n• Lo reenviaré a un canal seguro\n• Generaré una ID única de 9 dígitos\n• Te permitiré recuperarlo en cualquier momento con /file <id>\n\n🚀 ¡Rápido, seguro y siempre disponible!",
		KeyFileSaved:      "✅ ¡Archivo guardado con éxito!\n\n🆔 Tu ID único: `%s`\n\n📥 Usa /file %s para recuperarlo en cualquier momento.",
		KeyFileNotFound:   "❌ Archivo no encontrado con ID: %s",
		KeyFileRetrieved:  "📥 Aquí está tu archivo (ID: %s).",
		KeySendFile:       "📁 Por favor envíame un archivo para guardar.",
		KeyChooseLanguage: "🌍 Por favor elige tu idioma:",
		KeyLanguageSet:    "✅ ¡Idioma establecido en Español!",
	},
	Korean: {
		KeyName:           "🇰🇷 한국어",
		KeyWelcome:        "👋 환영합니다, %s님! 🌸\n\n✨ 저는 당신의 개인 파일 관리 봇입니다.\n\n📁 파일을 보내주시면:\n• 안전한 채널로 전달합니다\n• 고유한 9자리 ID를 생성합니다\n• /file <id>로 언제든지 검색할 수 있습니다\n\n🚀 빠르고 안전하며 항상 사용 가능합니다!",
		KeyFileSaved:      "✅ 파일이 성공적으로 저장되었습니다!\n\n🆔 고유 ID: `%s`\n\n📥 언제든지 /file %s로 검색하세요.",
		KeyFileNotFound:   "❌ ID로 파일을 찾을 수 없습니다: %s",
		KeyFileRetrieved:  "📥 파일입니다 (ID: %s).",
		KeySendFile:       "📁 저장할 파일을 보내주세요.",
		KeyChooseLanguage: "🌍 언어를 선택하세요:",
		KeyLanguageSet:    "✅ 언어가 한국어로 설정되었습니다!",
	},
	French: {
		KeyName:           "🇫🇷 Français",
		KeyWelcome:        "👋 Bienvenue, %s ! 🌸\n\n✨ Je suis votre bot personnel de gestion de fichiers.\n\n📁 Envoyez-moi un fichier et je vais :\n• Le transférer vers un canal sécurisé\n• Générer un ID unique à 9 chiffres\n• Vous permettre de le récupérer à tout moment avec /file <id>\n\n🚀 Rapide, sécurisé et toujours disponible !",
		KeyFileSaved:      "✅ Fichier enregistré avec succès !\n\n🆔 Votre ID unique : `%s`\n\n📥 Utilisez /file %s pour le récupérer à tout moment.",
		KeyFileNotFound:   "❌ Fichier introuvable avec l'ID : %s",
		KeyFileRetrieved:  "📥 Voici votre fichier (ID : %s).",
		KeySendFile:       "📁 Veuillez m'envoyer un fichier à enregistrer.",
		KeyChooseLanguage: "🌍 Veuillez choisir votre langue :",
		KeyLanguageSet:    "✅ Langue définie en Français !",
	},
	Chinese: {
		KeyName:           "🇨🇳 中文",
		KeyWelcome:        "👋 欢迎，%s！🌸\n\n✨ 我是您的个人文件管理机器人。\n\n📁 发送任何文件给我，我将：\n• 将其转发到安全频道\n• 生成唯一的9位数字ID\n• 让您随时使用 /file <id> 检索它\n\n🚀 快速、安全、随时可用！",
		KeyFileSaved:      "✅ 文件保存成功！\n\n🆔 您的唯一ID：`%s`\n\n📥 随时使用 /file %s 检索它。",
		KeyFileNotFound:   "❌ 未找到ID为 %s 的文件",
		KeyFileRetrieved:  "📥 这是您的文件（ID：%s）。",
		KeySendFile:       "📁 请发送文件给我保存。",
		KeyChooseLanguage: "🌍 请选择您的语言：",
		KeyLanguageSet:    "✅ 语言已设置为中文！",
	},
}

// Supported returns the supported languages in menu order.
func Supported() []Language {
	return []Language{English, Hebrew, Spanish, Korean, French, Chinese}
}

// Parse validates a raw tag against the supported set.
func Parse(tag string) (Language, bool) {
	lang := Language(tag)
	_, ok := tables[lang]
	return lang, ok
}

// T resolves a message for the given language, falling back to the default
// language when either the language or the key is unknown.
func T(lang Language, key Key) string {
	table, ok := tables[lang]
	if !ok {
		table = tables[Default]
	}
	if text, ok := table[key]; ok {
		return text
	}
	return tables[Default][key]
}
