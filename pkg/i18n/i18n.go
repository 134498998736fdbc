// Package i18n provides storefront translations for english and russian visitors.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// supported languages
const (
	English = "en"
	Russian = "ru"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.Russian})

var dict = map[string]map[string]string{
	English: {
		"home":                 "Home",
		"catalog":              "Catalog",
		"search":               "Search products...",
		"cart":                 "Cart",
		"featuredStories":      "Featured Stories",
		"popularProducts":      "Popular Products",
		"viewAll":              "View All",
		"loadMore":             "Load More",
		"loading":              "Loading more products...",
		"loadFailed":           "Failed to load products",
		"retry":                "Try again",
		"noProductsFound":      "No products found",
		"categories":           "Categories",
		"allCategories":        "All Categories",
		"sortBy":               "Sort by",
		"popular":              "Popular",
		"priceAsc":             "Price: Low to High",
		"priceDesc":            "Price: High to Low",
		"newest":               "Newest",
		"oldest":               "Oldest",
		"addToCart":            "Add to Cart",
		"inCart":               "In Cart",
		"remove":               "Remove",
		"total":                "Total",
		"clearCart":            "Clear Cart",
		"emptyCart":            "Your cart is empty",
		"emptyCartDescription": "Add some products to your cart and they will appear here",
		"continueShopping":     "Continue Shopping",
		"deliverTo":            "Deliver to",
		"enterAddress":         "Enter address",
		"addressNotSpecified":  "Address not specified",
		"fullAddress":          "Full Address",
		"addressDetails":       "Apartment, entrance, floor",
		"saveAddress":          "Save address",
		"removeAddress":        "Remove address",
		"language":             "Language",
		"english":              "English",
		"russian":              "Russian",
		"close":                "Close",
		"size":                 "Size",
		"discount":             "Discount",
		"newProducts":          "New products",
		"notFound":             "Page not found",
		"unknownError":         "An error occurred. Please try again",
		"shownCount":           "Showing {count} products",
		"checkout":             "Checkout",
		"delivery":             "Delivery",
		"courier":              "Courier",
		"pickup":               "Pickup",
		"subtotal":             "Subtotal",
		"deliveryCost":         "Delivery cost",
		"free":                 "Free",
		"freeDeliveryFrom":     "Free courier delivery from {amount}",
		"promoCode":            "Promo code",
		"applyPromo":           "Apply",
		"removePromo":          "Remove promo",
		"promoInvalid":         "Promo code is not valid",
		"promoUnavailable":     "Promo codes are unavailable, try later",
		"recipient":            "Recipient",
		"comment":              "Comment",
		"placeOrder":           "Place order",
		"orderPlaced":          "Thank you, your order is placed",
		"orderNumber":          "Order number",
		"recipientRequired":    "Recipient name is required",
		"addressRequired":      "Delivery address is required",
		"profile":              "Profile",
		"name":                 "Name",
		"email":                "Email",
		"phone":                "Phone",
		"birthday":             "Date of birth",
		"saveProfile":          "Save",
		"profileSaved":         "Profile saved",
		"companies":            "Companies",
		"companyName":          "Company name",
		"addCompany":           "Add company",
		"noCompanies":          "No companies yet",
		"contractNumber":       "Contract",
		"status":               "Status",
		"dissolve":             "Dissolve",
		"statusActive":         "Active",
		"statusInactive":       "Inactive",
		"statusDissolution":    "Dissolution in progress",
		"statusDissolved":      "Dissolved",
		"statusPending":        "Pending",
		"statusUnknown":        "Unknown",
	},
	Russian: {
		"home":                 "Главная",
		"catalog":              "Каталог",
		"search":               "Поиск товаров...",
		"cart":                 "Корзина",
		"featuredStories":      "Истории",
		"popularProducts":      "Популярные товары",
		"viewAll":              "Смотреть все",
		"loadMore":             "Загрузить еще",
		"loading":              "Загрузка товаров...",
		"loadFailed":           "Не удалось загрузить товары",
		"retry":                "Повторить",
		"noProductsFound":      "Товары не найдены",
		"categories":           "Категории",
		"allCategories":        "Все категории",
		"sortBy":               "Сортировать по",
		"popular":              "Популярные",
		"priceAsc":             "Цена: по возрастанию",
		"priceDesc":            "Цена: по убыванию",
		"newest":               "Новинки",
		"oldest":               "Сначала старые",
		"addToCart":            "В корзину",
		"inCart":               "В корзине",
		"remove":               "Удалить",
		"total":                "Итого",
		"clearCart":            "Очистить корзину",
		"emptyCart":            "Ваша корзина пуста",
		"emptyCartDescription": "Добавьте товары в корзину, и они появятся здесь",
		"continueShopping":     "Продолжить покупки",
		"deliverTo":            "Доставка по адресу",
		"enterAddress":         "Введите адрес",
		"addressNotSpecified":  "Адрес не указан",
		"fullAddress":          "Полный адрес",
		"addressDetails":       "Квартира, подъезд, этаж",
		"saveAddress":          "Сохранить адрес",
		"removeAddress":        "Удалить адрес",
		"language":             "Язык",
		"english":              "Английский",
		"russian":              "Русский",
		"close":                "Закрыть",
		"size":                 "Размер",
		"discount":             "Скидка",
		"newProducts":          "Новые товары",
		"notFound":             "Страница не найдена",
		"unknownError":         "Произошла ошибка. Попробуйте еще раз",
		"shownCount":           "Показано товаров: {count}",
		"checkout":             "Оформление заказа",
		"delivery":             "Доставка",
		"courier":              "Курьер",
		"pickup":               "Самовывоз",
		"subtotal":             "Подытог",
		"deliveryCost":         "Стоимость доставки",
		"free":                 "Бесплатно",
		"freeDeliveryFrom":     "Бесплатная доставка курьером от {amount}",
		"promoCode":            "Промокод",
		"applyPromo":           "Применить",
		"removePromo":          "Убрать промокод",
		"promoInvalid":         "Промокод недействителен",
		"promoUnavailable":     "Промокоды недоступны, попробуйте позже",
		"recipient":            "Получатель",
		"comment":              "Комментарий",
		"placeOrder":           "Оформить заказ",
		"orderPlaced":          "Спасибо, ваш заказ оформлен",
		"orderNumber":          "Номер заказа",
		"recipientRequired":    "Укажите имя получателя",
		"addressRequired":      "Укажите адрес доставки",
		"profile":              "Профиль",
		"name":                 "Имя",
		"email":                "Email",
		"phone":                "Телефон",
		"birthday":             "Дата рождения",
		"saveProfile":          "Сохранить",
		"profileSaved":         "Профиль сохранен",
		"companies":            "Компании",
		"companyName":          "Название компании",
		"addCompany":           "Добавить компанию",
		"noCompanies":          "Компаний пока нет",
		"contractNumber":       "Договор",
		"status":               "Статус",
		"dissolve":             "Расторгнуть",
		"statusActive":         "Активна",
		"statusInactive":       "Неактивна",
		"statusDissolution":    "В процессе расторжения",
		"statusDissolved":      "Расторгнута",
		"statusPending":        "На рассмотрении",
		"statusUnknown":        "Неизвестно",
	},
}

// Supported reports whether the language has a dictionary
func Supported(lang string) bool {
	_, ok := dict[lang]
	return ok
}

// Normalize returns lang if supported, otherwise the fallback
func Normalize(lang, fallback string) string {
	if Supported(lang) {
		return lang
	}
	return fallback
}

// FromAcceptLanguage picks the best supported language for the Accept-Language header
func FromAcceptLanguage(header, fallback string) string {
	if header == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	base, _ := tag.Base()
	return Normalize(base.String(), fallback)
}

// T returns the translation of key, english text is used when the language lacks the key
// and the key itself when nothing matches
func T(lang, key string) string {
	if v, ok := dict[lang][key]; ok {
		return v
	}
	if v, ok := dict[English][key]; ok {
		return v
	}
	return key
}

// Tf translates key and substitutes {name} placeholders
func Tf(lang, key string, params map[string]any) string {
	s := T(lang, key)
	for k, v := range params {
		s = strings.ReplaceAll(s, "{"+k+"}", fmt.Sprint(v))
	}
	return s
}

// Items returns "N items" with the plural form of the language
func Items(lang string, n int) string {
	if lang == Russian {
		return fmt.Sprintf("%d %s", n, ruPlural(n, "товар", "товара", "товаров"))
	}
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// ruPlural picks one of three russian forms for n
func ruPlural(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	switch mod10, mod100 := n%10, n%100; {
	case mod10 == 1 && mod100 != 11:
		return one
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return few
	default:
		return many
	}
}
