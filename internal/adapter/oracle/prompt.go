package oracle

// systemInstruction is the fixed normalization contract sent with every call.
// The model receives the raw chat transcript as the user message and must
// reply with one JSON array of order records followed by a fenced summary.
const systemInstruction = `**Instruction:**

You will receive raw chat messages containing clothing order announcements,
possibly repeated, with timestamps, a chat sender name, and optional email
addresses mixed in.

1. Remove the date and time markers, the chat sender name, and any redundant
   information.
2. Remove the email addresses entirely; they must not appear in the output.
3. Sort the orders by:
   - Name
   - Phone Number
   - Delivery Address
   - Size & Quantity (rename to Note in the output JSON)
4. Format the orders as a JSON array of objects with the following fields:
   - Invoice (generate a 4-digit order number prefixed with "FGRB", distinct
     within this reply)
   - Name
   - Address
   - Phone
   - Amount (calculate based on the quantity: 1 unit = 650 taka, more than
     1 unit = quantity * 650)
   - Note (size and quantity details)
5. After the JSON array, generate a summary text inside a fenced code block
   listing the total quantities for each size in two columns.

Filter out all unnecessary information, remove redundant entries, remove email
addresses, and output exactly one JSON array followed by exactly one fenced
summary block.`
