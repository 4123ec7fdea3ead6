package virtualitem

// Field describes one data attribute of a virtual item: its JSON key, the
// spreadsheet column label used for CSV exchange and its database column.
type Field struct {
	Key    string
	Label  string
	Column string
}

// Field keys.
const (
	KeyPlatform                  = "platform"
	KeyPlatformURL               = "platformUrl"
	KeyIntellectualProperty      = "intellectualProperty"
	KeyAgeRating                 = "ageRating"
	KeyCategory                  = "category"
	KeyType                      = "type"
	KeySubType                   = "subType"
	KeyTitle                     = "title"
	KeyMintSupply                = "mintSupply"
	KeyIncludeSerialNumber       = "includeSerialNumber"
	KeyPreMintCount              = "preMintCount"
	KeyReservedSerialNumbers     = "reservedSerialNumbers"
	KeySerialNumberTransferOrder = "serialNumberTransferOrder"
	KeyPurchaseCurrency1         = "purchaseCurrency1"
	KeyPurchasePrice1            = "purchasePrice1"
	KeyAndOr                     = "andOr"
	KeyPurchaseCurrency2         = "purchaseCurrency2"
	KeyPurchasePrice2            = "purchasePrice2"
	KeyUnlockCurrency            = "unlockCurrency"
	KeyUnlockThreshold           = "unlockThreshold"
	KeyMediaPrimaryGoogleURL     = "mediaPrimaryGoogleUrl"
	KeyMediaDisplayGoogleURL     = "mediaDisplayGoogleUrl"
	KeyMediaPrimaryS3Bucket      = "mediaPrimaryS3Bucket"
	KeyMediaDisplayS3Bucket      = "mediaDisplayS3Bucket"
	KeyTransferability           = "transferability"
	KeyP2PSaleRoyalty            = "p2pSaleRoyalty"
	KeyDescription               = "description"
	KeyMintLimitPerWallet        = "mintLimitPerWallet"
	KeyP2PLimitPerWallet         = "p2pLimitPerWallet"
	KeyCollection                = "collection"
	KeySeries                    = "series"
	KeyEpisode                   = "episode"
	KeySet                       = "set"
	KeySeason                    = "season"
	KeyLevel                     = "level"
	KeyRank                      = "rank"
	KeyEnhancement               = "enhancement"
	KeyLevelRankUpgradeType      = "levelRankUpgradeType"
	KeyArtist                    = "artist"
	KeyEditionType               = "editionType"
	KeyRarity                    = "rarity"
	KeyBonusMediaURL             = "bonusMediaUrl"
	KeyCopyright                 = "copyright"
	KeyComments                  = "comments"
)

// schema is ordered the way the catalog spreadsheet lays out its columns.
// "Transferabilty" keeps the spelling used by existing sheets.
var schema = []Field{
	{KeyPlatform, "Platform", "platform"},
	{KeyPlatformURL, "Platform URL", "platform_url"},
	{KeyIntellectualProperty, "Intellectual Property", "intellectual_property"},
	{KeyAgeRating, "Age Rating", "age_rating"},
	{KeyCategory, "Category", "category"},
	{KeyType, "Type", "type"},
	{KeySubType, "Sub-Type", "sub_type"},
	{KeyTitle, "Title", "title"},
	{KeyMintSupply, "Mint Supply", "mint_supply"},
	{KeyIncludeSerialNumber, "Include Serial #", "include_serial_number"},
	{KeyPreMintCount, "Pre-Mint Count", "pre_mint_count"},
	{KeyReservedSerialNumbers, "Reserved Serial #s", "reserved_serial_numbers"},
	{KeySerialNumberTransferOrder, "Serial # Transfer Order", "serial_number_transfer_order"},
	{KeyPurchaseCurrency1, "Purchase Currency - 1", "purchase_currency1"},
	{KeyPurchasePrice1, "Purchase Price - 1", "purchase_price1"},
	{KeyAndOr, "And / Or", "and_or"},
	{KeyPurchaseCurrency2, "Purchase Currency - 2", "purchase_currency2"},
	{KeyPurchasePrice2, "Purchase Price - 2", "purchase_price2"},
	{KeyUnlockCurrency, "Unlock Currency", "unlock_currency"},
	{KeyUnlockThreshold, "Unlock Threshold", "unlock_threshold"},
	{KeyMediaPrimaryGoogleURL, "Media - Primary (Google URL)", "media_primary_google_url"},
	{KeyMediaDisplayGoogleURL, "Media - Display (Google URL)", "media_display_google_url"},
	{KeyMediaPrimaryS3Bucket, "Media - Primary (S3 bucket)", "media_primary_s3_bucket"},
	{KeyMediaDisplayS3Bucket, "Media - Display (S3 bucket)", "media_display_s3_bucket"},
	{KeyTransferability, "Transferabilty", "transferability"},
	{KeyP2PSaleRoyalty, "P2P Sale Royalty", "p2p_sale_royalty"},
	{KeyDescription, "Description", "description"},
	{KeyMintLimitPerWallet, "Mint Limit / Wallet", "mint_limit_per_wallet"},
	{KeyP2PLimitPerWallet, "P2P Limit / Wallet", "p2p_limit_per_wallet"},
	{KeyCollection, "Collection", "collection"},
	{KeySeries, "Series", "series"},
	{KeyEpisode, "Episode", "episode"},
	{KeySet, "Set", "set_name"},
	{KeySeason, "Season", "season"},
	{KeyLevel, "Level", "level"},
	{KeyRank, "Rank", "rank"},
	{KeyEnhancement, "Enhancement", "enhancement"},
	{KeyLevelRankUpgradeType, "Level/Rank Upgrade Type (Dynamic or Additional)", "level_rank_upgrade_type"},
	{KeyArtist, "Artist", "artist"},
	{KeyEditionType, "Edition Type", "edition_type"},
	{KeyRarity, "Rarity", "rarity"},
	{KeyBonusMediaURL, "Bonus Media URL (e.g., YouTube link)", "bonus_media_url"},
	{KeyCopyright, "Copyright", "copyright"},
	{KeyComments, "Comments", "comments"},
}

var (
	// RequiredFields must be present and non-blank when an item is created.
	RequiredFields = []string{KeyPlatform, KeyTitle, KeyCategory, KeyType}

	// ImportRequiredFields is the looser rule applied to spreadsheet rows.
	ImportRequiredFields = []string{KeyPlatform, KeyTitle}

	// FilterableFields accept a substring filter on list queries.
	FilterableFields = []string{
		KeyPlatform,
		KeyIntellectualProperty,
		KeyCategory,
		KeyType,
		KeyCollection,
		KeySeries,
		KeyArtist,
		KeyRarity,
	}

	// SearchFields are scanned by the free-text search term.
	SearchFields = []string{KeyTitle, KeyDescription, KeyIntellectualProperty, KeyArtist}
)

var (
	fieldsByKey   = make(map[string]Field, len(schema))
	fieldsByLabel = make(map[string]Field, len(schema))
)

func init() {
	for _, f := range schema {
		fieldsByKey[f.Key] = f
		fieldsByLabel[f.Label] = f
	}
}

// Schema returns the ordered field table.
func Schema() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// Labels returns the CSV header labels in schema order.
func Labels() []string {
	out := make([]string, len(schema))
	for i, f := range schema {
		out[i] = f.Label
	}
	return out
}

// LookupField resolves a JSON key.
func LookupField(key string) (Field, bool) {
	f, ok := fieldsByKey[key]
	return f, ok
}

// LookupLabel resolves a spreadsheet column label.
func LookupLabel(label string) (Field, bool) {
	f, ok := fieldsByLabel[label]
	return f, ok
}

// IsFilterable reports whether key accepts a list filter.
func IsFilterable(key string) bool {
	for _, k := range FilterableFields {
		if k == key {
			return true
		}
	}
	return false
}
