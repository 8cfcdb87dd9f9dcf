package category

type Icon struct {
	v string
}

func (i Icon) String() string {
	return i.v
}

var (
	IconUnknown        = Icon{}
	IconFitnessCenter  = Icon{v: "fitness_center"}
	IconShoppingBag    = Icon{v: "shopping_bag"}
	IconBook           = Icon{v: "book"}
	IconFlight         = Icon{v: "flight"}
	IconPalette        = Icon{v: "palette"}
	IconRestaurant     = Icon{v: "restaurant"}
	IconMovie          = Icon{v: "movie"}
	IconWork           = Icon{v: "work"}
	IconSchool         = Icon{v: "school"}
	IconComputer       = Icon{v: "computer"}
	IconBorderColor    = Icon{v: "border_color"}
	IconFavorite       = Icon{v: "favorite"}
	IconBedtime        = Icon{v: "bedtime"}
	IconSpa            = Icon{v: "spa"}
	IconMedication     = Icon{v: "medication"}
	IconHome           = Icon{v: "home"}
	IconChildCare      = Icon{v: "child_care"}
	IconPets           = Icon{v: "pets"}
	IconKitchen        = Icon{v: "kitchen"}
	IconAttachMoney    = Icon{v: "attach_money"}
	IconShoppingCart   = Icon{v: "shopping_cart"}
	IconCreditCard     = Icon{v: "credit_card"}
	IconReceipt        = Icon{v: "receipt"}
	IconDirectionsCar  = Icon{v: "directions_car"}
	IconDirectionsBike = Icon{v: "directions_bike"}
	IconMap            = Icon{v: "map"}
	IconCommute        = Icon{v: "commute"}
	IconMusicNote      = Icon{v: "music_note"}
	IconCameraAlt      = Icon{v: "camera_alt"}
	IconSportsEsports  = Icon{v: "sports_esports"}
	IconBuild          = Icon{v: "build"}
)

// Catalog order: activities, work & study, personal & health, home & family,
// finance, travel, misc.
var icons = []Icon{
	IconFitnessCenter, IconShoppingBag, IconBook, IconFlight, IconPalette, IconRestaurant, IconMovie,
	IconWork, IconSchool, IconComputer, IconBorderColor,
	IconFavorite, IconBedtime, IconSpa, IconMedication,
	IconHome, IconChildCare, IconPets, IconKitchen,
	IconAttachMoney, IconShoppingCart, IconCreditCard, IconReceipt,
	IconDirectionsCar, IconDirectionsBike, IconMap, IconCommute,
	IconMusicNote, IconCameraAlt, IconSportsEsports, IconBuild,
}

// Icons returns the selectable icons in catalog order.
func Icons() []Icon {
	result := make([]Icon, len(icons))
	copy(result, icons)
	return result
}

func ParseIcon(value string) (Icon, error) {
	for _, icon := range icons {
		if icon.v == value {
			return icon, nil
		}
	}
	return IconUnknown, ErrParseIcon
}
