package domain

// Статический контент лендинга

type Feature struct {
	Icon        string
	Title       string
	Description string
}

type ProcessStep struct {
	Number      int
	Title       string
	Description string
}

type Project struct {
	Title       string
	Category    string
	Description string
	Tags        []string
}

type Link struct {
	Name string
	URL  string
}

type LinkGroup struct {
	Title string
	Links []Link
}

// Landing — всё, что нужно шаблону страницы кроме калькулятора
type Landing struct {
	Brand      string
	ContactURL string
	Nav        []Link
	Features   []Feature
	Process    []ProcessStep
	Portfolio  []Project
	Footer     []LinkGroup
}

// DefaultLanding — контент сайта студии
func DefaultLanding(contactURL string) Landing {
	return Landing{
		Brand:      "MiniApp Studio",
		ContactURL: contactURL,
		Nav: []Link{
			{Name: "Возможности", URL: "#features"},
			{Name: "Процесс", URL: "#process"},
			{Name: "Стоимость", URL: "#calculator"},
			{Name: "Портфолио", URL: "#portfolio"},
		},
		Features: []Feature{
			{Icon: "users", Title: "Доступ к миллионам пользователей", Description: "Telegram имеет более 900 миллионов активных пользователей ежемесячно, обеспечивая мгновенный доступ к глобальной аудитории."},
			{Icon: "card", Title: "Платежи внутри платформы", Description: "Встроенные платежные решения позволяют совершать транзакции прямо в приложении."},
			{Icon: "phone", Title: "Нативный интерфейс", Description: "Мини-приложения выглядят и ощущаются как часть Telegram."},
			{Icon: "chart", Title: "Аналитика и конверсии", Description: "Отслеживайте взаимодействия пользователей и оптимизируйте конверсии."},
		},
		Process: []ProcessStep{
			{Number: 1, Title: "Анализ и стратегия", Description: "Анализируем ваш бизнес и целевую аудиторию, чтобы разработать оптимальное решение."},
			{Number: 2, Title: "UX/UI дизайн", Description: "Создаем интуитивно понятный интерфейс, который вписывается в экосистему Telegram."},
			{Number: 3, Title: "Разработка", Description: "Используем современные технологии для быстрого, безопасного и функционального мини-приложения."},
			{Number: 4, Title: "Тестирование и запуск", Description: "Тестируем каждый аспект приложения перед запуском."},
			{Number: 5, Title: "Поддержка и обновления", Description: "Обеспечиваем техническую поддержку и регулярные обновления."},
		},
		Portfolio: []Project{
			{Title: "Знакомства", Category: "Social", Description: "Приложение для поиска новых знакомств с интерактивным интерфейсом и геолокацией", Tags: []string{"Geo", "Chat", "Matching"}},
			{Title: "Платежное решение", Category: "Fintech", Description: "Приложение для быстрых платежей и переводов, интегрированное с банковским API", Tags: []string{"Payments", "API"}},
			{Title: "Онлайн магазин", Category: "E-commerce", Description: "Магазин с каталогом товаров и корзиной для покупок внутри Telegram", Tags: []string{"Catalog", "Cart"}},
		},
		Footer: []LinkGroup{
			{Title: "Услуги", Links: []Link{
				{Name: "Telegram mini apps", URL: "#"},
				{Name: "Веб-разработка", URL: "#"},
				{Name: "UX/UI Дизайн", URL: "#"},
				{Name: "Mobile App", URL: "#"},
			}},
			{Title: "Компания", Links: []Link{
				{Name: "О нас", URL: "#"},
				{Name: "Карьера", URL: "#"},
				{Name: "Блог", URL: "#"},
				{Name: "Контакты", URL: contactURL},
			}},
		},
	}
}
