package palworld

// Response records are decoded from JSON response bodies. Unknown
// fields sent by newer server versions are tolerated; the required
// fields below are checked after decoding so that a contract mismatch
// surfaces as an error on the call that received it.

// InfoResponse is the server identity and version snapshot returned by get_info.
type InfoResponse struct {
	Version     string `json:"version" validate:"required"`
	ServerName  string `json:"servername" validate:"required"`
	Description string `json:"description"`
	WorldGUID   string `json:"worldguid"`
}

// Player describes one connected player in the roster.
type Player struct {
	Name        string  `json:"name"`
	AccountName string  `json:"accountName"`
	PlayerID    string  `json:"playerId"`
	UserID      string  `json:"userId"`
	IP          string  `json:"ip"`
	Ping        float64 `json:"ping"`
	LocationX   float64 `json:"location_x"`
	LocationY   float64 `json:"location_y"`
	Level       int     `json:"level"`
}

// PlayersResponse is the player roster returned by get_players.
type PlayersResponse struct {
	Players []Player `json:"players" validate:"required"`
}

// MetricsResponse is the live performance snapshot returned by get_metrics.
type MetricsResponse struct {
	ServerFPS        int     `json:"serverfps"`
	ServerFrameTime  float64 `json:"serverframetime"`
	CurrentPlayerNum int     `json:"currentplayernum"`
	MaxPlayerNum     int     `json:"maxplayernum"`
	Uptime           int     `json:"uptime"`
	Days             int     `json:"days"`
}

// SettingsResponse is the server configuration snapshot returned by
// get_settings. Field names mirror the server's settings document.
type SettingsResponse struct {
	Difficulty                          string   `json:"Difficulty"`
	RandomizerType                      string   `json:"RandomizerType"`
	RandomizerSeed                      string   `json:"RandomizerSeed"`
	IsRandomizerPalLevelRandom          bool     `json:"bIsRandomizerPalLevelRandom"`
	DayTimeSpeedRate                    float64  `json:"DayTimeSpeedRate"`
	NightTimeSpeedRate                  float64  `json:"NightTimeSpeedRate"`
	ExpRate                             float64  `json:"ExpRate"`
	PalCaptureRate                      float64  `json:"PalCaptureRate"`
	PalSpawnNumRate                     float64  `json:"PalSpawnNumRate"`
	PalDamageRateAttack                 float64  `json:"PalDamageRateAttack"`
	PalDamageRateDefense                float64  `json:"PalDamageRateDefense"`
	PlayerDamageRateAttack              float64  `json:"PlayerDamageRateAttack"`
	PlayerDamageRateDefense             float64  `json:"PlayerDamageRateDefense"`
	PlayerStomachDecreaceRate           float64  `json:"PlayerStomachDecreaceRate"`
	PlayerStaminaDecreaceRate           float64  `json:"PlayerStaminaDecreaceRate"`
	PlayerAutoHPRegeneRate              float64  `json:"PlayerAutoHPRegeneRate"`
	PlayerAutoHPRegeneRateInSleep       float64  `json:"PlayerAutoHpRegeneRateInSleep"`
	PalStomachDecreaceRate              float64  `json:"PalStomachDecreaceRate"`
	PalStaminaDecreaceRate              float64  `json:"PalStaminaDecreaceRate"`
	PalAutoHPRegeneRate                 float64  `json:"PalAutoHPRegeneRate"`
	PalAutoHPRegeneRateInSleep          float64  `json:"PalAutoHpRegeneRateInSleep"`
	BuildObjectHPRate                   float64  `json:"BuildObjectHpRate"`
	BuildObjectDamageRate               float64  `json:"BuildObjectDamageRate"`
	BuildObjectDeteriorationDamageRate  float64  `json:"BuildObjectDeteriorationDamageRate"`
	CollectionDropRate                  float64  `json:"CollectionDropRate"`
	CollectionObjectHPRate              float64  `json:"CollectionObjectHpRate"`
	CollectionObjectRespawnSpeedRate    float64  `json:"CollectionObjectRespawnSpeedRate"`
	EnemyDropItemRate                   float64  `json:"EnemyDropItemRate"`
	DeathPenalty                        string   `json:"DeathPenalty"`
	EnablePlayerToPlayerDamage          bool     `json:"bEnablePlayerToPlayerDamage"`
	EnableFriendlyFire                  bool     `json:"bEnableFriendlyFire"`
	EnableInvaderEnemy                  bool     `json:"bEnableInvaderEnemy"`
	ActiveUNKO                          bool     `json:"bActiveUNKO"`
	EnableAimAssistPad                  bool     `json:"bEnableAimAssistPad"`
	EnableAimAssistKeyboard             bool     `json:"bEnableAimAssistKeyboard"`
	DropItemMaxNum                      int      `json:"DropItemMaxNum"`
	DropItemMaxNumUNKO                  int      `json:"DropItemMaxNum_UNKO"`
	BaseCampMaxNum                      int      `json:"BaseCampMaxNum"`
	BaseCampWorkerMaxNum                int      `json:"BaseCampWorkerMaxNum"`
	DropItemAliveMaxHours               int      `json:"DropItemAliveMaxHours"`
	AutoResetGuildNoOnlinePlayers       bool     `json:"bAutoResetGuildNoOnlinePlayers"`
	AutoResetGuildTimeNoOnlinePlayers   int      `json:"AutoResetGuildTimeNoOnlinePlayers"`
	GuildPlayerMaxNum                   int      `json:"GuildPlayerMaxNum"`
	BaseCampMaxNumInGuild               int      `json:"BaseCampMaxNumInGuild"`
	PalEggDefaultHatchingTime           int      `json:"PalEggDefaultHatchingTime"`
	WorkSpeedRate                       float64  `json:"WorkSpeedRate"`
	AutoSaveSpan                        int      `json:"autoSaveSpan"`
	IsMultiplay                         bool     `json:"bIsMultiplay"`
	IsPvP                               bool     `json:"bIsPvP"`
	Hardcore                            bool     `json:"bHardcore"`
	PalLost                             bool     `json:"bPalLost"`
	CharacterRecreateInHardcore         bool     `json:"bCharacterRecreateInHardcore"`
	CanPickupOtherGuildDeathPenaltyDrop bool     `json:"bCanPickupOtherGuildDeathPenaltyDrop"`
	EnableNonLoginPenalty               bool     `json:"bEnableNonLoginPenalty"`
	EnableFastTravel                    bool     `json:"bEnableFastTravel"`
	IsStartLocationSelectByMap          bool     `json:"bIsStartLocationSelectByMap"`
	ExistPlayerAfterLogout              bool     `json:"bExistPlayerAfterLogout"`
	EnableDefenseOtherGuildPlayer       bool     `json:"bEnableDefenseOtherGuildPlayer"`
	InvisibleOtherGuildBaseCampAreaFX   bool     `json:"bInvisibleOtherGuildBaseCampAreaFX"`
	BuildAreaLimit                      bool     `json:"bBuildAreaLimit"`
	ItemWeightRate                      float64  `json:"ItemWeightRate"`
	CoopPlayerMaxNum                    int      `json:"CoopPlayerMaxNum"`
	ServerPlayerMaxNum                  int      `json:"ServerPlayerMaxNum"`
	ServerName                          string   `json:"ServerName"`
	ServerDescription                   string   `json:"ServerDescription"`
	PublicPort                          int      `json:"PublicPort"`
	PublicIP                            string   `json:"PublicIP"`
	RCONEnabled                         bool     `json:"RCONEnabled"`
	RCONPort                            int      `json:"RCONPort"`
	Region                              string   `json:"Region"`
	UseAuth                             bool     `json:"bUseAuth"`
	BanListURL                          string   `json:"BanListURL"`
	RESTAPIEnabled                      bool     `json:"RESTAPIEnabled"`
	RESTAPIPort                         int      `json:"RESTAPIPort"`
	ShowPlayerList                      bool     `json:"bShowPlayerList"`
	ChatPostLimitPerMinute              int      `json:"ChatPostLimitPerMinute"`
	CrossplayPlatforms                  []string `json:"CrossplayPlatforms"`
	IsUseBackupSaveData                 bool     `json:"bIsUseBackupSaveData"`
	LogFormatType                       string   `json:"LogFormatType"`
	SupplyDropSpan                      int      `json:"SupplyDropSpan"`
	EnablePredatorBossPal               bool     `json:"EnablePredatorBossPal"`
	MaxBuildingLimitNum                 int      `json:"MaxBuildingLimitNum"`
	ServerReplicatePawnCullDistance     int      `json:"ServerReplicatePawnCullDistance"`
	AllowGlobalPalboxExport             bool     `json:"bAllowGlobalPalboxExport"`
	AllowGlobalPalboxImport             bool     `json:"bAllowGlobalPalboxImport"`
	EquipmentDurabilityDamageRate       float64  `json:"EquipmentDurabilityDamageRate"`
	ItemContainerForceMarkDirtyInterval int      `json:"ItemContainerForceMarkDirtyInterval"`
	ItemCorruptionMultiplier            float64  `json:"ItemCorruptionMultiplier"`
}

// Request records are serialized as JSON request bodies. Each is
// checked against its declared constraints before any network call is
// made; violations surface as [FieldErrors].

// AnnounceRequest broadcasts a message to all connected players.
type AnnounceRequest struct {
	Message string `json:"message" validate:"required"`
}

// KickRequest removes a player from the server.
type KickRequest struct {
	UserID  string `json:"userid" validate:"required"`
	Message string `json:"message,omitempty"`
}

// BanRequest bans a player from the server.
type BanRequest struct {
	UserID  string `json:"userid" validate:"required"`
	Message string `json:"message,omitempty"`
}

// UnbanRequest lifts a player's ban.
type UnbanRequest struct {
	UserID string `json:"userid" validate:"required"`
}

// ShutdownRequest schedules a graceful server shutdown.
type ShutdownRequest struct {
	WaitTime int    `json:"waittime" validate:"min=0"`
	Message  string `json:"message,omitempty"`
}

// SaveRequest is the (empty) payload shape of the save action.
type SaveRequest struct{}

// StopRequest is the (empty) payload shape of the stop action.
type StopRequest struct{}
