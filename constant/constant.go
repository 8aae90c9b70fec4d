package constant

const (
	DIR_RIGHT, ACT_A    = 0x00, 0x00
	DIR_LEFT, ACT_B     = 0x01, 0x01
	DIR_UP, ACT_SELECT  = 0x02, 0x02
	DIR_DOWN, ACT_START = 0x03, 0x03
	LCD_WIDTH           = 160
	LCD_HEIGHT          = 144
	FRAME_TICKS         = 456 * 154
	CPU_FREQ            = 4194304
	AUDIO_FREQ          = 48000
	AUDIO_SAMPLES       = 800
	AUDIO_QUEUE_SIZE    = 8
	CHANNELS            = 2
	WINDOW_SCALE        = 3
	WINDOW_WIDTH        = LCD_WIDTH * WINDOW_SCALE
	WINDOW_HEIGHT       = LCD_HEIGHT * WINDOW_SCALE
	WINDOW_TITLE        = "mcboy"
)

// Shades from lightest to darkest, as 0xRRGGBB.
var COLOR_SHADES = [4]uint32{0xe0f8d0, 0x88c070, 0x346856, 0x081820}
