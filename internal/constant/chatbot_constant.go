package constant

const (
	ChatMessageSenderUser      = "user"
	ChatMessageSenderAssistant = "assistant"

	ChatSessionStateActive    = "activa"
	ChatSessionStateFinalized = "finalizada"

	// Maximum length of a session name derived from the first user message.
	SessionNameMaxLen = 80

	// Fixed user-facing warnings. Internal detail never replaces these.
	WarningOffTopic     = "⚠️ Tu pregunta no está relacionada con los datos de recursos humanos universitarios."
	WarningInvalidQuery = "⚠️ Se detectó una combinación de palabras incoherentes. Intenta reformular la pregunta."
	WarningGenericError = "⚠️ Ocurrió un error procesando tu pregunta. Intenta nuevamente."
)
